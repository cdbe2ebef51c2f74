package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/database"
	"github.com/hmdang/bluemoon/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPayment reads a payment row from the scanner.
// Expected column order: id, fee_id, household_id, amount, note, status, pay_date, paid_at, created_at, updated_at
func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var statusStr string

	if err := s.Scan(
		&p.ID, &p.FeeID, &p.HouseholdID, &p.Amount, &p.Note, &statusStr,
		&p.PayDate, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = payment.Status(statusStr)

	return &p, nil
}

const selectPaymentColumns = `
	id, fee_id, household_id, amount, note, status, pay_date, paid_at, created_at, updated_at
`

// CreatePayment inserts the payment. The unique index on
// (fee_id, household_id) is what keeps one record per pair even under
// concurrent disbursements; its violation maps to payment.ErrDuplicate.
func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (fee_id, household_id, amount, note, status, pay_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.FeeID,
		p.HouseholdID,
		p.Amount,
		p.Note,
		p.Status,
		p.PayDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return payment.ErrDuplicate
		}

		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.FeeID != nil {
		query += fmt.Sprintf(" AND fee_id = $%d", argIdx)

		args = append(args, *filter.FeeID)
		argIdx++
	}

	if filter.HouseholdID != nil {
		query += fmt.Sprintf(" AND household_id = $%d", argIdx)

		args = append(args, *filter.HouseholdID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments
		SET amount = $1, note = $2, pay_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, p.Amount, p.Note, p.PayDate, p.ID)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, paidAt *time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, paidAt, id)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	return nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}

	return nil
}
