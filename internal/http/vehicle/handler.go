package vehicle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/vehicle"
)

type Handler struct {
	svc *vehicle.Service
}

func NewHandler(svc *vehicle.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) WriteRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type vehicleResponse struct {
	ID          uuid.UUID    `json:"id"`
	Plate       string       `json:"plate"`
	HouseholdID uuid.UUID    `json:"household_id"`
	Kind        vehicle.Kind `json:"kind"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

func toResponse(v *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:          v.ID,
		Plate:       v.Plate,
		HouseholdID: v.HouseholdID,
		Kind:        v.Kind,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type createVehicleRequest struct {
	Plate       string       `json:"plate"`
	HouseholdID uuid.UUID    `json:"household_id"`
	Kind        vehicle.Kind `json:"kind"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Plate == "" {
		http.Error(w, "plate is required", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), vehicle.CreateParams{
		Plate:       req.Plate,
		HouseholdID: req.HouseholdID,
		Kind:        req.Kind,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrUnknownKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrDuplicatePlate):
			http.Error(w, "license plate already registered", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := vehicle.ListFilter{}

	if s := r.URL.Query().Get("household_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid household_id", http.StatusBadRequest)
			return
		}

		filter.HouseholdID = &id
	}

	if s := r.URL.Query().Get("kind"); s != "" {
		kind := vehicle.Kind(s)
		filter.Kind = &kind
	}

	vehicles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toResponse(v)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateVehicleRequest struct {
	Plate       *string       `json:"plate,omitempty"`
	HouseholdID *uuid.UUID    `json:"household_id,omitempty"`
	Kind        *vehicle.Kind `json:"kind,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Plate != nil {
		v.Plate = *req.Plate
	}

	if req.HouseholdID != nil {
		v.HouseholdID = *req.HouseholdID
	}

	if req.Kind != nil {
		v.Kind = *req.Kind
	}

	if err := h.svc.Update(r.Context(), v); err != nil {
		switch {
		case errors.Is(err, vehicle.ErrUnknownKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrDuplicatePlate):
			http.Error(w, "license plate already registered", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
