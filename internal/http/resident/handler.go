package resident

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/resident"
)

type Handler struct {
	svc *resident.Service
}

func NewHandler(svc *resident.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// WriteRoutes registers the mutating endpoints; the router gates them by
// role.
func (h *Handler) WriteRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type residentResponse struct {
	ID           uuid.UUID   `json:"id"`
	FullName     string      `json:"full_name"`
	NationalID   string      `json:"national_id"`
	DateOfBirth  time.Time   `json:"date_of_birth"`
	Gender       string      `json:"gender,omitempty"`
	PhoneNumber  string      `json:"phone_number,omitempty"`
	HouseholdIDs []uuid.UUID `json:"household_ids,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

func toResponse(res *resident.Resident) residentResponse {
	return residentResponse{
		ID:           res.ID,
		FullName:     res.FullName,
		NationalID:   res.NationalID,
		DateOfBirth:  res.DateOfBirth,
		Gender:       res.Gender,
		PhoneNumber:  res.PhoneNumber,
		HouseholdIDs: res.HouseholdIDs,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
}

type createResidentRequest struct {
	FullName    string    `json:"full_name"`
	NationalID  string    `json:"national_id"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.FullName == "" || req.NationalID == "" {
		http.Error(w, "full_name and national_id are required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Create(r.Context(), resident.CreateParams{
		FullName:    req.FullName,
		NationalID:  req.NationalID,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, resident.ErrDuplicate) {
			http.Error(w, "national id already registered", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := resident.ListFilter{}

	if s := r.URL.Query().Get("household_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid household_id", http.StatusBadRequest)
			return
		}

		filter.HouseholdID = &id
	}

	residents, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]residentResponse, len(residents))
	for i, res := range residents {
		resp[i] = toResponse(res)
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

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateResidentRequest struct {
	FullName    *string    `json:"full_name,omitempty"`
	NationalID  *string    `json:"national_id,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.FullName != nil {
		res.FullName = *req.FullName
	}

	if req.NationalID != nil {
		res.NationalID = *req.NationalID
	}

	if req.DateOfBirth != nil {
		res.DateOfBirth = *req.DateOfBirth
	}

	if req.Gender != nil {
		res.Gender = *req.Gender
	}

	if req.PhoneNumber != nil {
		res.PhoneNumber = *req.PhoneNumber
	}

	if err := h.svc.Update(r.Context(), res); err != nil {
		if errors.Is(err, resident.ErrDuplicate) {
			http.Error(w, "national id already registered", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
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
		if errors.Is(err, resident.ErrNotFound) {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
