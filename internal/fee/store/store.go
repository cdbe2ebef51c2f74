package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/database"
	"github.com/hmdang/bluemoon/internal/fee"
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

// Expected column order: id, name, description, category, collection_id, created_at, updated_at
func scanFee(s scanner) (*fee.Fee, error) {
	var f fee.Fee

	var categoryStr string

	if err := s.Scan(
		&f.ID, &f.Name, &f.Description, &categoryStr, &f.CollectionID,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	f.Category = fee.Category(categoryStr)

	return &f, nil
}

const selectFeeColumns = `
	id, name, description, category, collection_id, created_at, updated_at
`

func (s *Store) CreateFee(ctx context.Context, f *fee.Fee) error {
	query := `
		INSERT INTO fees (name, description, category, collection_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		f.Name,
		f.Description,
		f.Category,
		f.CollectionID,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating fee: %w", err)
	}

	return nil
}

func (s *Store) GetFee(ctx context.Context, id uuid.UUID) (*fee.Fee, error) {
	query := `SELECT ` + selectFeeColumns + ` FROM fees WHERE id = $1`

	f, err := scanFee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fee.ErrNotFound
		}

		return nil, fmt.Errorf("getting fee: %w", err)
	}

	return f, nil
}

func (s *Store) ListFees(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	query := `SELECT ` + selectFeeColumns + ` FROM fees WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CollectionID != nil {
		query += fmt.Sprintf(" AND collection_id = $%d", argIdx)

		args = append(args, *filter.CollectionID)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fees: %w", err)
	}
	defer rows.Close()

	var fees []*fee.Fee

	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fee: %w", err)
		}

		fees = append(fees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fee rows: %w", err)
	}

	return fees, nil
}

func (s *Store) UpdateFee(ctx context.Context, f *fee.Fee) error {
	query := `
		UPDATE fees
		SET name = $1, description = $2, category = $3, collection_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		f.Name,
		f.Description,
		f.Category,
		f.CollectionID,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating fee: %w", err)
	}

	return nil
}

func (s *Store) DeleteFee(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fees WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fee.ErrInUse
		}

		return fmt.Errorf("deleting fee: %w", err)
	}

	return nil
}

func scanCollection(s scanner) (*fee.Collection, error) {
	var c fee.Collection

	if err := s.Scan(&c.ID, &c.Name, &c.DueDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

const selectCollectionColumns = `
	id, name, due_date, created_at, updated_at
`

func (s *Store) CreateCollection(ctx context.Context, c *fee.Collection) error {
	query := `
		INSERT INTO fee_collections (name, due_date, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.DueDate).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

func (s *Store) GetCollection(ctx context.Context, id uuid.UUID) (*fee.Collection, error) {
	query := `SELECT ` + selectCollectionColumns + ` FROM fee_collections WHERE id = $1`

	c, err := scanCollection(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fee.ErrCollectionNotFound
		}

		return nil, fmt.Errorf("getting collection: %w", err)
	}

	return c, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]*fee.Collection, error) {
	query := `SELECT ` + selectCollectionColumns + ` FROM fee_collections ORDER BY due_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var collections []*fee.Collection

	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}

		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collection rows: %w", err)
	}

	return collections, nil
}

func (s *Store) UpdateCollection(ctx context.Context, c *fee.Collection) error {
	query := `
		UPDATE fee_collections
		SET name = $1, due_date = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, c.Name, c.DueDate, c.ID)
	if err != nil {
		return fmt.Errorf("updating collection: %w", err)
	}

	return nil
}

// DeleteCollection detaches referencing fees and deletes the collection in
// one transaction, so a fee never points at a vanished billing period.
func (s *Store) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	detachQuery := `
		UPDATE fees
		SET collection_id = NULL, updated_at = NOW()
		WHERE collection_id = $1
	`
	if _, err := dbTx.ExecContext(ctx, detachQuery, id); err != nil {
		return fmt.Errorf("detaching fees: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM fee_collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fee.ErrCollectionNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
