package fee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
)

type Handler struct {
	svc *fee.Service
}

func NewHandler(svc *fee.Service) *Handler {
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

func (h *Handler) CollectionRoutes(r chi.Router) {
	r.Get("/", h.listCollections)
	r.Get("/{id}", h.getCollection)
}

func (h *Handler) CollectionWriteRoutes(r chi.Router) {
	r.Post("/", h.createCollection)
	r.Patch("/{id}", h.updateCollection)
	r.Delete("/{id}", h.deleteCollection)
}

type feeResponse struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Category     fee.Category `json:"category"`
	CollectionID *uuid.UUID   `json:"collection_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

func toResponse(f *fee.Fee) feeResponse {
	return feeResponse{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Category:     f.Category,
		CollectionID: f.CollectionID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

type collectionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	DueDate   time.Time  `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toCollectionResponse(c *fee.Collection) collectionResponse {
	return collectionResponse{
		ID:        c.ID,
		Name:      c.Name,
		DueDate:   c.DueDate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type createFeeRequest struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     fee.Category `json:"category"`
	CollectionID *uuid.UUID   `json:"collection_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	f, err := h.svc.Create(r.Context(), fee.CreateParams{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, fee.ErrInvalidCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, fee.ErrCollectionNotFound):
			http.Error(w, "fee collection not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := fee.ListFilter{}

	if s := r.URL.Query().Get("collection_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid collection_id", http.StatusBadRequest)
			return
		}

		filter.CollectionID = &id
	}

	if s := r.URL.Query().Get("category"); s != "" {
		category := fee.Category(s)
		filter.Category = &category
	}

	fees, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]feeResponse, len(fees))
	for i, f := range fees {
		resp[i] = toResponse(f)
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

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, fee.ErrNotFound) {
			http.Error(w, "fee not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateFeeRequest struct {
	Name         *string       `json:"name,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Category     *fee.Category `json:"category,omitempty"`
	CollectionID *uuid.UUID    `json:"collection_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, fee.ErrNotFound) {
			http.Error(w, "fee not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		f.Name = *req.Name
	}

	if req.Description != nil {
		f.Description = *req.Description
	}

	if req.Category != nil {
		f.Category = *req.Category
	}

	if req.CollectionID != nil {
		f.CollectionID = req.CollectionID
	}

	if err := h.svc.Update(r.Context(), f); err != nil {
		if errors.Is(err, fee.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
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
		case errors.Is(err, fee.ErrNotFound):
			http.Error(w, "fee not found", http.StatusNotFound)
		case errors.Is(err, fee.ErrInUse):
			http.Error(w, "fee is referenced by a collection", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type collectionRequest struct {
	Name    string    `json:"name"`
	DueDate time.Time `json:"due_date"`
}

func (h *Handler) createCollection(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateCollection(r.Context(), fee.CollectionParams{
		Name:    req.Name,
		DueDate: req.DueDate,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toCollectionResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]collectionResponse, len(collections))
	for i, c := range collections {
		resp[i] = toCollectionResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		if errors.Is(err, fee.ErrCollectionNotFound) {
			http.Error(w, "fee collection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCollectionResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		if errors.Is(err, fee.ErrCollectionNotFound) {
			http.Error(w, "fee collection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != "" {
		c.Name = req.Name
	}

	if !req.DueDate.IsZero() {
		c.DueDate = req.DueDate
	}

	if err := h.svc.UpdateCollection(r.Context(), c); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCollectionResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		if errors.Is(err, fee.ErrCollectionNotFound) {
			http.Error(w, "fee collection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
