package household

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/household"
)

type Handler struct {
	svc *household.Service
}

func NewHandler(svc *household.Service) *Handler {
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
	r.Post("/{id}/members", h.addMember)
	r.Delete("/{id}/members/{residentID}", h.removeMember)
	r.Put("/{id}/head", h.setHead)
}

type householdResponse struct {
	ID             uuid.UUID   `json:"id"`
	Address        string      `json:"address"`
	Area           float64     `json:"area"`
	HeadResidentID *uuid.UUID  `json:"head_resident_id,omitempty"`
	MemberIDs      []uuid.UUID `json:"member_ids,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      *time.Time  `json:"updated_at,omitempty"`
}

func toResponse(hh *household.Household) householdResponse {
	return householdResponse{
		ID:             hh.ID,
		Address:        hh.Address,
		Area:           hh.Area,
		HeadResidentID: hh.HeadResidentID,
		MemberIDs:      hh.MemberIDs,
		CreatedAt:      hh.CreatedAt,
		UpdatedAt:      hh.UpdatedAt,
	}
}

type createHouseholdRequest struct {
	Address string  `json:"address"`
	Area    float64 `json:"area"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hh, err := h.svc.Create(r.Context(), household.CreateParams{
		Address: req.Address,
		Area:    req.Area,
	})
	if err != nil {
		if errors.Is(err, household.ErrInvalidArea) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(hh)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	households, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]householdResponse, len(households))
	for i, hh := range households {
		resp[i] = toResponse(hh)
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

	hh, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, household.ErrNotFound) {
			http.Error(w, "household not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(hh)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateHouseholdRequest struct {
	Address *string  `json:"address,omitempty"`
	Area    *float64 `json:"area,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hh, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, household.ErrNotFound) {
			http.Error(w, "household not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Address != nil {
		hh.Address = *req.Address
	}

	if req.Area != nil {
		hh.Area = *req.Area
	}

	if err := h.svc.Update(r.Context(), hh); err != nil {
		if errors.Is(err, household.ErrInvalidArea) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(hh)); err != nil {
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
		switch {
		case errors.Is(err, household.ErrNotFound):
			http.Error(w, "household not found", http.StatusNotFound)
		case errors.Is(err, household.ErrHasVehicles):
			http.Error(w, "household still owns vehicles", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type memberRequest struct {
	ResidentID uuid.UUID `json:"resident_id"`
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddMember(r.Context(), id, req.ResidentID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	residentID, err := uuid.Parse(chi.URLParam(r, "residentID"))
	if err != nil {
		http.Error(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), id, residentID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setHead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetHead(r.Context(), id, req.ResidentID); err != nil {
		switch {
		case errors.Is(err, household.ErrNotFound):
			http.Error(w, "household not found", http.StatusNotFound)
		case errors.Is(err, household.ErrNotMember):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
