package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/database"
	"github.com/hmdang/bluemoon/internal/resident"
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

// Expected column order: id, full_name, national_id, date_of_birth, gender, phone_number, created_at, updated_at
func scanResident(s scanner) (*resident.Resident, error) {
	var res resident.Resident

	if err := s.Scan(
		&res.ID, &res.FullName, &res.NationalID, &res.DateOfBirth,
		&res.Gender, &res.PhoneNumber, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &res, nil
}

const selectResidentColumns = `
	id, full_name, national_id, date_of_birth, gender, phone_number, created_at, updated_at
`

const insertResidentQuery = `
	INSERT INTO residents (full_name, national_id, date_of_birth, gender, phone_number, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

func (s *Store) CreateResident(ctx context.Context, res *resident.Resident) error {
	err := s.db.QueryRowContext(ctx, insertResidentQuery,
		res.FullName,
		res.NationalID,
		res.DateOfBirth,
		res.Gender,
		res.PhoneNumber,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return resident.ErrDuplicate
		}

		return fmt.Errorf("creating resident: %w", err)
	}

	return nil
}

func (s *Store) GetResident(ctx context.Context, id uuid.UUID) (*resident.Resident, error) {
	query := `SELECT ` + selectResidentColumns + ` FROM residents WHERE id = $1`

	res, err := scanResident(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, resident.ErrNotFound
		}

		return nil, fmt.Errorf("getting resident: %w", err)
	}

	householdIDs, err := s.householdIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	res.HouseholdIDs = householdIDs

	return res, nil
}

func (s *Store) householdIDs(ctx context.Context, residentID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT household_id FROM household_members WHERE resident_id = $1`

	rows, err := s.db.QueryContext(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating membership rows: %w", err)
	}

	return ids, nil
}

func (s *Store) ListResidents(ctx context.Context, filter resident.ListFilter) ([]*resident.Resident, error) {
	query := `SELECT ` + selectResidentColumns + ` FROM residents WHERE TRUE`

	var args []any

	if filter.HouseholdID != nil {
		query = `SELECT ` + selectResidentColumns + `
			FROM residents
			WHERE id IN (SELECT resident_id FROM household_members WHERE household_id = $1)`

		args = append(args, *filter.HouseholdID)
	}

	query += " ORDER BY full_name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing residents: %w", err)
	}
	defer rows.Close()

	var residents []*resident.Resident

	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resident: %w", err)
		}

		residents = append(residents, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resident rows: %w", err)
	}

	return residents, nil
}

func (s *Store) UpdateResident(ctx context.Context, res *resident.Resident) error {
	query := `
		UPDATE residents
		SET full_name = $1, national_id = $2, date_of_birth = $3, gender = $4, phone_number = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		res.FullName,
		res.NationalID,
		res.DateOfBirth,
		res.Gender,
		res.PhoneNumber,
		res.ID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return resident.ErrDuplicate
		}

		return fmt.Errorf("updating resident: %w", err)
	}

	return nil
}

// DeleteResident detaches the resident from households (membership rows and
// any head-of-household reference) before deleting, in one transaction.
func (s *Store) DeleteResident(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`UPDATE households SET head_resident_id = NULL, updated_at = NOW() WHERE head_resident_id = $1`, id,
	); err != nil {
		return fmt.Errorf("clearing head references: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM household_members WHERE resident_id = $1`, id,
	); err != nil {
		return fmt.Errorf("removing memberships: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM residents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting resident: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return resident.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// importLockKey derives an advisory lock key from the batch's national ids
// so concurrent imports of overlapping batches serialize.
func importLockKey(nationalIDs []string) int64 {
	sorted := make([]string, len(nationalIDs))
	copy(sorted, nationalIDs)
	sort.Strings(sorted)

	h := fnv.New64a()

	for _, id := range sorted {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, nationalIDs []string) (resident.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(nationalIDs)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, nationalIDs []string) ([]*resident.Resident, error) {
	if len(nationalIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectResidentColumns + `
		FROM residents
		WHERE national_id = ANY($1)
		ORDER BY full_name ASC`

	rows, err := itx.tx.QueryContext(ctx, query, nationalIDs)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	var duplicates []*resident.Resident

	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resident: %w", err)
		}

		duplicates = append(duplicates, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreateResidents(ctx context.Context, residents []*resident.Resident) error {
	for _, res := range residents {
		err := itx.tx.QueryRowContext(ctx, insertResidentQuery,
			res.FullName,
			res.NationalID,
			res.DateOfBirth,
			res.Gender,
			res.PhoneNumber,
		).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return resident.ErrDuplicate
			}

			return fmt.Errorf("creating resident: %w", err)
		}
	}

	return nil
}
