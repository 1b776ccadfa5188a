package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	admmodel "github.com/Tiagotpk/minimal-api/internal/administrator/model"
	"github.com/Tiagotpk/minimal-api/internal/common/auth"
)

type Handlers struct {
	Administrators AdministratorEndpoints
	Vehicles       VehicleEndpoints
}

type AdministratorEndpoints interface {
	Login(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type VehicleEndpoints interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Route binds a method and pattern to a handler together with its access
// policy. Protected with an empty role set means any authenticated caller.
type Route struct {
	Method    string
	Pattern   string
	Protected bool
	Roles     []admmodel.Role
	Handler   http.HandlerFunc
}

func Routes(h Handlers) []Route {
	adminOnly := []admmodel.Role{admmodel.RoleAdministrator}
	adminOrEditor := []admmodel.Role{admmodel.RoleAdministrator, admmodel.RoleEditor}

	return []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: handleHome},
		{Method: http.MethodPost, Pattern: "/administrators/login", Handler: h.Administrators.Login},
		{Method: http.MethodPost, Pattern: "/administrators", Protected: true, Handler: h.Administrators.Create},
		{Method: http.MethodGet, Pattern: "/administrators", Protected: true, Roles: adminOnly, Handler: h.Administrators.List},
		{Method: http.MethodGet, Pattern: "/administrators/{id}", Protected: true, Roles: adminOnly, Handler: h.Administrators.GetByID},
		{Method: http.MethodPost, Pattern: "/vehicles", Protected: true, Roles: adminOrEditor, Handler: h.Vehicles.Create},
		{Method: http.MethodGet, Pattern: "/vehicles", Protected: true, Roles: adminOrEditor, Handler: h.Vehicles.List},
		{Method: http.MethodGet, Pattern: "/vehicles/{id}", Protected: true, Roles: adminOrEditor, Handler: h.Vehicles.GetByID},
		{Method: http.MethodPut, Pattern: "/vehicles/{id}", Protected: true, Roles: adminOnly, Handler: h.Vehicles.Update},
		{Method: http.MethodDelete, Pattern: "/vehicles/{id}", Protected: true, Roles: adminOnly, Handler: h.Vehicles.Delete},
	}
}

// New builds the router from the route table. Authentication runs before the
// role check, so a bad token yields 401 even on role-restricted routes.
func New(tokens *auth.Manager, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	requireAuth := auth.Middleware(tokens)

	for _, rt := range Routes(h) {
		var handler http.Handler = rt.Handler
		if rt.Protected {
			if len(rt.Roles) > 0 {
				handler = auth.RequireRole(roleNames(rt.Roles)...)(handler)
			}
			handler = requireAuth(handler)
		}
		r.Method(rt.Method, rt.Pattern, handler)
	}

	return r
}

func roleNames(roles []admmodel.Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return names
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Welcome to the vehicle registry API",
	})
}
