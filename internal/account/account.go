package account

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/auth"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
)

type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	Role         auth.Role
	ResidentID   *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
