package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) WriteRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

// DisburseRoutes registers the batch endpoint under the fees subtree, so
// the URL reads POST /fees/{id}/disburse.
func (h *Handler) DisburseRoutes(r chi.Router) {
	r.Post("/{id}/disburse", h.disburse)
}

type disburseRequest struct {
	PayDate *time.Time `json:"pay_date,omitempty"`
}

func (h *Handler) disburse(w http.ResponseWriter, r *http.Request) {
	feeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid fee id", http.StatusBadRequest)
		return
	}

	var req disburseRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.svc.Disburse(r.Context(), feeID, req.PayDate)
	if err != nil {
		switch {
		case errors.Is(err, fee.ErrNotFound):
			http.Error(w, "fee not found", http.StatusNotFound)
		case errors.Is(err, payment.ErrUnsupportedCategory):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDisbursementResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createPaymentRequest struct {
	FeeID       uuid.UUID  `json:"fee_id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	Amount      int64      `json:"amount"`
	Note        string     `json:"note"`
	PayDate     *time.Time `json:"pay_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), payment.CreateParams{
		FeeID:       req.FeeID,
		HouseholdID: req.HouseholdID,
		Amount:      req.Amount,
		Note:        req.Note,
		PayDate:     req.PayDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, fee.ErrNotFound):
			http.Error(w, "fee not found", http.StatusNotFound)
		case errors.Is(err, payment.ErrDuplicate):
			http.Error(w, "household already billed for this fee", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := payment.ListFilter{}

	if s := r.URL.Query().Get("fee_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid fee_id", http.StatusBadRequest)
			return
		}

		filter.FeeID = &id
	}

	if s := r.URL.Query().Get("household_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid household_id", http.StatusBadRequest)
			return
		}

		filter.HouseholdID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := payment.Status(s)
		filter.Status = &status
	}

	payments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			http.Error(w, "payment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePaymentRequest struct {
	Amount  *int64     `json:"amount,omitempty"`
	Note    *string    `json:"note,omitempty"`
	PayDate *time.Time `json:"pay_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			http.Error(w, "payment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Amount != nil {
		p.Amount = *req.Amount
	}

	if req.Note != nil {
		p.Note = *req.Note
	}

	if req.PayDate != nil {
		p.PayDate = *req.PayDate
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status payment.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, payment.ErrNotFound):
			http.Error(w, "payment not found", http.StatusNotFound)
		case errors.Is(err, payment.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
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
