package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/household"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, address, area, head_resident_id, created_at, updated_at
func scanHousehold(s scanner) (*household.Household, error) {
	var h household.Household

	if err := s.Scan(
		&h.ID, &h.Address, &h.Area, &h.HeadResidentID, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &h, nil
}

const selectHouseholdColumns = `
	id, address, area, head_resident_id, created_at, updated_at
`

func (s *Store) CreateHousehold(ctx context.Context, h *household.Household) error {
	query := `
		INSERT INTO households (address, area, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, h.Address, h.Area).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating household: %w", err)
	}

	return nil
}

func (s *Store) GetHousehold(ctx context.Context, id uuid.UUID) (*household.Household, error) {
	query := `SELECT ` + selectHouseholdColumns + ` FROM households WHERE id = $1`

	h, err := scanHousehold(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, household.ErrNotFound
		}

		return nil, fmt.Errorf("getting household: %w", err)
	}

	members, err := s.memberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	h.MemberIDs = members

	return h, nil
}

func (s *Store) memberIDs(ctx context.Context, householdID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT resident_id
		FROM household_members
		WHERE household_id = $1
		ORDER BY joined_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return ids, nil
}

func (s *Store) ListHouseholds(ctx context.Context) ([]*household.Household, error) {
	query := `SELECT ` + selectHouseholdColumns + ` FROM households ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing households: %w", err)
	}
	defer rows.Close()

	var households []*household.Household

	byID := make(map[uuid.UUID]*household.Household)

	for rows.Next() {
		h, err := scanHousehold(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning household: %w", err)
		}

		households = append(households, h)
		byID[h.ID] = h
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating household rows: %w", err)
	}

	memberRows, err := s.db.QueryContext(ctx, `SELECT household_id, resident_id FROM household_members`)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var householdID, residentID uuid.UUID
		if err := memberRows.Scan(&householdID, &residentID); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		if h, ok := byID[householdID]; ok {
			h.MemberIDs = append(h.MemberIDs, residentID)
		}
	}

	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return households, nil
}

func (s *Store) UpdateHousehold(ctx context.Context, h *household.Household) error {
	query := `
		UPDATE households
		SET address = $1, area = $2, head_resident_id = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, h.Address, h.Area, h.HeadResidentID, h.ID)
	if err != nil {
		return fmt.Errorf("updating household: %w", err)
	}

	return nil
}

// DeleteHousehold removes the household and its membership rows in one
// transaction. A household that still owns vehicles cannot be deleted; the
// vehicles must be re-registered or removed first.
func (s *Store) DeleteHousehold(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var vehicleCount int
	if err := dbTx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vehicles WHERE household_id = $1`, id,
	).Scan(&vehicleCount); err != nil {
		return fmt.Errorf("counting vehicles: %w", err)
	}

	if vehicleCount > 0 {
		return household.ErrHasVehicles
	}

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM household_members WHERE household_id = $1`, id,
	); err != nil {
		return fmt.Errorf("removing members: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM households WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting household: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return household.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) AddMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	query := `
		INSERT INTO household_members (household_id, resident_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (household_id, resident_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, householdID, residentID)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}

	return nil
}

// RemoveMember drops the membership row and clears the head reference when
// the departing resident is the head.
func (s *Store) RemoveMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM household_members WHERE household_id = $1 AND resident_id = $2`,
		householdID, residentID,
	); err != nil {
		return fmt.Errorf("removing member: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`UPDATE households SET head_resident_id = NULL, updated_at = NOW()
		 WHERE id = $1 AND head_resident_id = $2`,
		householdID, residentID,
	); err != nil {
		return fmt.Errorf("clearing head: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
