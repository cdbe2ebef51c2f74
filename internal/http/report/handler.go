package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/collections/{id}", h.collectionSummary)
}

type feeSummaryDTO struct {
	FeeID      uuid.UUID    `json:"fee_id"`
	Name       string       `json:"name"`
	Category   fee.Category `json:"category"`
	Households int          `json:"households"`
	PaidCount  int          `json:"paid_count"`
	Billed     int64        `json:"billed"`
	Collected  int64        `json:"collected"`
}

type collectionSummaryResponse struct {
	CollectionID   uuid.UUID       `json:"collection_id"`
	Name           string          `json:"name"`
	DueDate        time.Time       `json:"due_date"`
	Fees           []feeSummaryDTO `json:"fees"`
	TotalBilled    int64           `json:"total_billed"`
	TotalCollected int64           `json:"total_collected"`
}

func (h *Handler) collectionSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), id)
	if err != nil {
		if errors.Is(err, fee.ErrCollectionNotFound) {
			http.Error(w, "fee collection not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := collectionSummaryResponse{
		CollectionID:   summary.Collection.ID,
		Name:           summary.Collection.Name,
		DueDate:        summary.Collection.DueDate,
		TotalBilled:    summary.TotalBilled,
		TotalCollected: summary.TotalCollected,
	}

	for _, fs := range summary.Fees {
		resp.Fees = append(resp.Fees, feeSummaryDTO{
			FeeID:      fs.Fee.ID,
			Name:       fs.Fee.Name,
			Category:   fs.Fee.Category,
			Households: fs.Households,
			PaidCount:  fs.PaidCount,
			Billed:     fs.Billed,
			Collected:  fs.Collected,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
