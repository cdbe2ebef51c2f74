package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/account"
	"github.com/hmdang/bluemoon/internal/auth"
	"github.com/hmdang/bluemoon/internal/database"
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

// Expected column order: id, username, password_hash, role, resident_id, created_at, updated_at
func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var roleStr string

	if err := s.Scan(
		&acc.ID, &acc.Username, &acc.PasswordHash, &roleStr, &acc.ResidentID,
		&acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Role = auth.Role(roleStr)

	return &acc, nil
}

const selectAccountColumns = `
	id, username, password_hash, role, resident_id, created_at, updated_at
`

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, role, resident_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.Username,
		acc.PasswordHash,
		acc.Role,
		acc.ResidentID,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return account.ErrDuplicateUsername
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE username = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account by username: %w", err)
	}

	return acc, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts ORDER BY username ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET username = $1, password_hash = $2, role = $3, resident_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		acc.Username,
		acc.PasswordHash,
		acc.Role,
		acc.ResidentID,
		acc.ID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return account.ErrDuplicateUsername
		}

		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
