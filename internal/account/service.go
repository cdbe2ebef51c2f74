package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmdang/bluemoon/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type RegisterParams struct {
	Username   string
	Password   string
	Role       auth.Role
	ResidentID *uuid.UUID
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	if !params.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, params.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acc := &Account{
		Username:     params.Username,
		PasswordHash: hash,
		Role:         params.Role,
		ResidentID:   params.ResidentID,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Login verifies the credentials and returns the account with a signed
// bearer token carrying its role.
func (s *Service) Login(ctx context.Context, username, password string) (*Account, string, error) {
	acc, err := s.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(acc.ID, acc.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return acc, token, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role auth.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	acc.Role = role

	return s.repo.UpdateAccount(ctx, acc)
}

func (s *Service) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	acc.PasswordHash = hash

	return s.repo.UpdateAccount(ctx, acc)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}
