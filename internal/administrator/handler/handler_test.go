package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiagotpk/minimal-api/internal/administrator/handler/dto"
	"github.com/Tiagotpk/minimal-api/internal/administrator/model"
)

type fakeAdministratorService struct {
	administrators map[int]model.Administrator
	nextID         int

	listPages []*int
}

func newFakeAdministratorService() *fakeAdministratorService {
	return &fakeAdministratorService{administrators: make(map[int]model.Administrator), nextID: 1}
}

func (f *fakeAdministratorService) Login(_ context.Context, email, password string) (model.Administrator, string, error) {
	for _, adm := range f.administrators {
		if adm.Email == email && password == "123456" {
			return adm, "token-for-" + adm.Email, nil
		}
	}
	return model.Administrator{}, "", model.ErrInvalidCredentials
}

func (f *fakeAdministratorService) Create(_ context.Context, email, password string, role model.Role) (model.Administrator, error) {
	adm := model.Administrator{ID: f.nextID, Email: email, Role: role}
	f.nextID++
	f.administrators[adm.ID] = adm
	return adm, nil
}

func (f *fakeAdministratorService) List(_ context.Context, page *int) ([]model.Administrator, error) {
	f.listPages = append(f.listPages, page)
	return nil, nil
}

func (f *fakeAdministratorService) GetByID(_ context.Context, id int) (model.Administrator, error) {
	adm, ok := f.administrators[id]
	if !ok {
		return model.Administrator{}, model.ErrNotFound
	}
	return adm, nil
}

func newTestRouter(svc *fakeAdministratorService) http.Handler {
	h := NewAdministratorHandler(svc)
	r := chi.NewRouter()
	r.Post("/administrators/login", h.Login)
	r.Post("/administrators", h.Create)
	r.Get("/administrators", h.List)
	r.Get("/administrators/{id}", h.GetByID)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	svc := newFakeAdministratorService()
	svc.administrators[1] = model.Administrator{ID: 1, Email: "adm@teste.com", Role: model.RoleAdministrator}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/administrators/login", `{"email":"adm@teste.com","password":"123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "adm@teste.com", resp.Email)
	assert.Equal(t, "Administrator", resp.Role)
	assert.Equal(t, "token-for-adm@teste.com", resp.Token)
}

func TestLoginRejected(t *testing.T) {
	svc := newFakeAdministratorService()
	svc.administrators[1] = model.Administrator{ID: 1, Email: "adm@teste.com", Role: model.RoleAdministrator}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/administrators/login", `{"email":"adm@teste.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateAdministrator(t *testing.T) {
	svc := newFakeAdministratorService()
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/administrators", `{"email":"editor@teste.com","password":"secret","role":"Editor"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/administrator/1", rec.Header().Get("Location"))

	var resp dto.AdministratorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.AdministratorResponse{ID: 1, Email: "editor@teste.com", Role: "Editor"}, resp)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreateAdministratorValidation(t *testing.T) {
	svc := newFakeAdministratorService()
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/administrators", `{"email":"","password":"","role":"Superuser"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs dto.ValidationErrors
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{
		"the email field cannot be empty",
		"the password field cannot be empty",
		"the role must be either Administrator or Editor",
	}, errs.Messages)

	assert.Empty(t, svc.administrators, "invalid input must never reach the service")
}

func TestListPassesPageParam(t *testing.T) {
	svc := newFakeAdministratorService()
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/administrators?page=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = doJSON(t, router, http.MethodGet, "/administrators", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, svc.listPages, 2)
	require.NotNil(t, svc.listPages[0])
	assert.Equal(t, 3, *svc.listPages[0])
	assert.Nil(t, svc.listPages[1])
}

func TestGetAdministratorNotFound(t *testing.T) {
	router := newTestRouter(newFakeAdministratorService())

	rec := doJSON(t, router, http.MethodGet, "/administrators/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/administrators/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
