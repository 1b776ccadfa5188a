package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiagotpk/minimal-api/internal/common/auth"
)

// stubEndpoints satisfies both endpoint interfaces and records which
// handlers actually ran, so the tests can assert that rejected requests
// never reach application code.
type stubEndpoints struct {
	hits map[string]int
}

func newStubEndpoints() *stubEndpoints {
	return &stubEndpoints{hits: make(map[string]int)}
}

func (s *stubEndpoints) hit(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.hits[name]++
		w.WriteHeader(http.StatusOK)
	}
}

func (s *stubEndpoints) Login(w http.ResponseWriter, r *http.Request)   { s.hit("login")(w, r) }
func (s *stubEndpoints) Create(w http.ResponseWriter, r *http.Request)  { s.hit("create")(w, r) }
func (s *stubEndpoints) List(w http.ResponseWriter, r *http.Request)    { s.hit("list")(w, r) }
func (s *stubEndpoints) GetByID(w http.ResponseWriter, r *http.Request) { s.hit("get")(w, r) }
func (s *stubEndpoints) Update(w http.ResponseWriter, r *http.Request)  { s.hit("update")(w, r) }
func (s *stubEndpoints) Delete(w http.ResponseWriter, r *http.Request)  { s.hit("delete")(w, r) }

const testSecret = "router-test-secret-key"

func newTestServer(t *testing.T) (http.Handler, *stubEndpoints, *auth.Manager) {
	t.Helper()

	tokens, err := auth.NewManager(testSecret)
	require.NoError(t, err)

	stubs := newStubEndpoints()
	router := New(tokens, Handlers{Administrators: stubs, Vehicles: stubs})
	return router, stubs, tokens
}

func do(router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAccessControlMatrix(t *testing.T) {
	router, stubs, tokens := newTestServer(t)

	adminToken, err := tokens.Generate("adm@teste.com", "Administrator")
	require.NoError(t, err)
	editorToken, err := tokens.Generate("editor@teste.com", "Editor")
	require.NoError(t, err)

	cases := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{"home is public", http.MethodGet, "/", "", http.StatusOK},
		{"login is public", http.MethodPost, "/administrators/login", "", http.StatusOK},

		{"create administrator requires a token", http.MethodPost, "/administrators", "", http.StatusUnauthorized},
		{"create administrator accepts any role", http.MethodPost, "/administrators", editorToken, http.StatusOK},

		{"list administrators rejects anonymous", http.MethodGet, "/administrators", "", http.StatusUnauthorized},
		{"list administrators rejects editors", http.MethodGet, "/administrators", editorToken, http.StatusForbidden},
		{"list administrators allows administrators", http.MethodGet, "/administrators", adminToken, http.StatusOK},
		{"get administrator rejects editors", http.MethodGet, "/administrators/1", editorToken, http.StatusForbidden},
		{"get administrator allows administrators", http.MethodGet, "/administrators/1", adminToken, http.StatusOK},

		{"create vehicle rejects anonymous", http.MethodPost, "/vehicles", "", http.StatusUnauthorized},
		{"create vehicle allows editors", http.MethodPost, "/vehicles", editorToken, http.StatusOK},
		{"create vehicle allows administrators", http.MethodPost, "/vehicles", adminToken, http.StatusOK},
		{"list vehicles allows editors", http.MethodGet, "/vehicles", editorToken, http.StatusOK},
		{"get vehicle allows editors", http.MethodGet, "/vehicles/1", editorToken, http.StatusOK},

		{"update vehicle rejects anonymous", http.MethodPut, "/vehicles/1", "", http.StatusUnauthorized},
		{"update vehicle rejects editors", http.MethodPut, "/vehicles/1", editorToken, http.StatusForbidden},
		{"update vehicle allows administrators", http.MethodPut, "/vehicles/1", adminToken, http.StatusOK},
		{"delete vehicle rejects editors", http.MethodDelete, "/vehicles/1", editorToken, http.StatusForbidden},
		{"delete vehicle allows administrators", http.MethodDelete, "/vehicles/1", adminToken, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(router, tc.method, tc.target, tc.token)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized || tc.status == http.StatusForbidden {
				assert.Empty(t, rec.Body.String())
			}
		})
	}

	assert.Equal(t, 1, stubs.hits["update"], "update must run exactly once")
}

func TestRejectedRequestsNeverReachHandlers(t *testing.T) {
	router, stubs, tokens := newTestServer(t)

	editorToken, err := tokens.Generate("editor@teste.com", "Editor")
	require.NoError(t, err)

	do(router, http.MethodGet, "/administrators", "")
	do(router, http.MethodGet, "/administrators", "garbage")
	do(router, http.MethodGet, "/administrators", editorToken)
	do(router, http.MethodDelete, "/vehicles/1", editorToken)

	assert.Empty(t, stubs.hits)
}

func TestInvalidTokensGetUnauthorized(t *testing.T) {
	router, _, _ := newTestServer(t)

	otherManager, err := auth.NewManager("a-completely-different-secret")
	require.NoError(t, err)
	foreignToken, err := otherManager.Generate("adm@teste.com", "Administrator")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Email: "adm@teste.com",
		Role:  "Administrator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage token":     "not.a.jwt",
		"foreign signature": foreignToken,
		"expired token":     expiredToken,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(router, http.MethodGet, "/administrators", token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestHome(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := do(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Welcome to the vehicle registry API"}`, rec.Body.String())
}
