package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/payment"
)

type paymentResponse struct {
	ID          uuid.UUID      `json:"id"`
	FeeID       uuid.UUID      `json:"fee_id"`
	HouseholdID uuid.UUID      `json:"household_id"`
	Amount      int64          `json:"amount"`
	Note        string         `json:"note,omitempty"`
	Status      payment.Status `json:"status"`
	PayDate     time.Time      `json:"pay_date"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		FeeID:       p.FeeID,
		HouseholdID: p.HouseholdID,
		Amount:      p.Amount,
		Note:        p.Note,
		Status:      p.Status,
		PayDate:     p.PayDate,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toResponseList(payments []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toResponse(p)
	}

	return resp
}

type failureDTO struct {
	HouseholdID uuid.UUID `json:"household_id"`
	Reason      string    `json:"reason"`
}

type disbursementResponse struct {
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Failures []failureDTO      `json:"failures,omitempty"`
	Payments []paymentResponse `json:"payments"`
}

func toDisbursementResponse(result *payment.DisbursementResult) disbursementResponse {
	resp := disbursementResponse{
		Created:  result.Created,
		Skipped:  result.Skipped,
		Payments: toResponseList(result.Payments),
	}

	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, failureDTO{
			HouseholdID: f.HouseholdID,
			Reason:      f.Reason,
		})
	}

	return resp
}
