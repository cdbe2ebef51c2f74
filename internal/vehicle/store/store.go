package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/database"
	"github.com/hmdang/bluemoon/internal/vehicle"
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

// Expected column order: id, plate, household_id, kind, created_at, updated_at
func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var kindStr string

	if err := s.Scan(&v.ID, &v.Plate, &v.HouseholdID, &kindStr, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}

	v.Kind = vehicle.Kind(kindStr)

	return &v, nil
}

const selectVehicleColumns = `
	id, plate, household_id, kind, created_at, updated_at
`

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate, household_id, kind, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, v.Plate, v.HouseholdID, v.Kind).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return vehicle.ErrDuplicatePlate
		}

		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles WHERE id = $1`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.HouseholdID != nil {
		query += fmt.Sprintf(" AND household_id = $%d", argIdx)

		args = append(args, *filter.HouseholdID)
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $1, household_id = $2, kind = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, v.Plate, v.HouseholdID, v.Kind, v.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return vehicle.ErrDuplicatePlate
		}

		return fmt.Errorf("updating vehicle: %w", err)
	}

	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	return nil
}
