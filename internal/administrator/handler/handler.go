package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Tiagotpk/minimal-api/internal/administrator/handler/dto"
	"github.com/Tiagotpk/minimal-api/internal/administrator/model"
	"github.com/Tiagotpk/minimal-api/internal/common/logger"
)

type AdministratorService interface {
	Login(ctx context.Context, email, password string) (model.Administrator, string, error)
	Create(ctx context.Context, email, password string, role model.Role) (model.Administrator, error)
	List(ctx context.Context, page *int) ([]model.Administrator, error)
	GetByID(ctx context.Context, id int) (model.Administrator, error)
}

type AdministratorHandler struct {
	service AdministratorService
}

func NewAdministratorHandler(service AdministratorService) *AdministratorHandler {
	return &AdministratorHandler{service: service}
}

func (h *AdministratorHandler) Login(w http.ResponseWriter, r *http.Request) {
	const action = "administrator_login"
	requestID := middleware.GetReqID(r.Context())

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	adm, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			logger.Warn(action, fmt.Sprintf("rejected login for %s", req.Email), requestID, "")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		logger.Error(action, "login failed", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info(action, fmt.Sprintf("administrator %s logged in", adm.Email), requestID)
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Email: adm.Email,
		Role:  string(adm.Role),
		Token: token,
	})
}

func (h *AdministratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	const action = "administrator_create"
	requestID := middleware.GetReqID(r.Context())

	var req dto.AdministratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrors{Messages: messages})
		return
	}

	// Validate guarantees the role parses.
	role, _ := model.ParseRole(*req.Role)

	adm, err := h.service.Create(r.Context(), req.Email, req.Password, role)
	if err != nil {
		logger.Error(action, "failed to create administrator", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info(action, fmt.Sprintf("administrator %s created with id %d", adm.Email, adm.ID), requestID)
	w.Header().Set("Location", fmt.Sprintf("/administrator/%d", adm.ID))
	writeJSON(w, http.StatusCreated, dto.NewAdministratorResponse(adm))
}

func (h *AdministratorHandler) List(w http.ResponseWriter, r *http.Request) {
	const action = "administrator_list"
	requestID := middleware.GetReqID(r.Context())

	var page *int
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = &p
		}
	}

	administrators, err := h.service.List(r.Context(), page)
	if err != nil {
		logger.Error(action, "failed to list administrators", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	views := make([]dto.AdministratorResponse, 0, len(administrators))
	for _, adm := range administrators {
		views = append(views, dto.NewAdministratorResponse(adm))
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *AdministratorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const action = "administrator_get"
	requestID := middleware.GetReqID(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	adm, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.Error(action, "failed to fetch administrator", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewAdministratorResponse(adm))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
