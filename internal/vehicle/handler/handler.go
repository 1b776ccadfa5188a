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

	"github.com/Tiagotpk/minimal-api/internal/common/logger"
	"github.com/Tiagotpk/minimal-api/internal/vehicle/handler/dto"
	"github.com/Tiagotpk/minimal-api/internal/vehicle/model"
)

type VehicleService interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle model.Vehicle) error
	Delete(ctx context.Context, vehicle model.Vehicle) error
	GetByID(ctx context.Context, id int) (model.Vehicle, error)
	List(ctx context.Context, page *int, name, brand string) ([]model.Vehicle, error)
}

type VehicleHandler struct {
	service VehicleService
}

func NewVehicleHandler(service VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	const action = "vehicle_create"
	requestID := middleware.GetReqID(r.Context())

	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrors{Messages: messages})
		return
	}

	vehicle := model.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}

	if err := h.service.Create(r.Context(), &vehicle); err != nil {
		logger.Error(action, "failed to create vehicle", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info(action, fmt.Sprintf("vehicle %q created with id %d", vehicle.Name, vehicle.ID), requestID)
	w.Header().Set("Location", fmt.Sprintf("/vehicle/%d", vehicle.ID))
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	const action = "vehicle_list"
	requestID := middleware.GetReqID(r.Context())

	var page *int
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = &p
		}
	}
	name := r.URL.Query().Get("name")
	brand := r.URL.Query().Get("brand")

	vehicles, err := h.service.List(r.Context(), page, name, brand)
	if err != nil {
		logger.Error(action, "failed to list vehicles", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if vehicles == nil {
		vehicles = make([]model.Vehicle, 0)
	}

	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const action = "vehicle_get"
	requestID := middleware.GetReqID(r.Context())

	vehicle, ok := h.fetch(w, r, action, requestID)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	const action = "vehicle_update"
	requestID := middleware.GetReqID(r.Context())

	vehicle, ok := h.fetch(w, r, action, requestID)
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrors{Messages: messages})
		return
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year

	if err := h.service.Update(r.Context(), vehicle); err != nil {
		logger.Error(action, "failed to update vehicle", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info(action, fmt.Sprintf("vehicle %d updated", vehicle.ID), requestID)
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const action = "vehicle_delete"
	requestID := middleware.GetReqID(r.Context())

	vehicle, ok := h.fetch(w, r, action, requestID)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), vehicle); err != nil {
		logger.Error(action, "failed to delete vehicle", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info(action, fmt.Sprintf("vehicle %d deleted", vehicle.ID), requestID)
	w.WriteHeader(http.StatusNoContent)
}

// fetch resolves the {id} route parameter to an existing vehicle, writing
// 404 or 500 itself when it can't.
func (h *VehicleHandler) fetch(w http.ResponseWriter, r *http.Request, action, requestID string) (model.Vehicle, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return model.Vehicle{}, false
	}

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return model.Vehicle{}, false
		}
		logger.Error(action, "failed to fetch vehicle", requestID, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return model.Vehicle{}, false
	}

	return vehicle, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
