package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmdang/bluemoon/internal/account"
	"github.com/hmdang/bluemoon/internal/auth"
)

func newService(t *testing.T) (*account.Service, *account.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := account.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return account.NewService(repo, tokens), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *account.Account) error {
			acc.ID = uuid.New()
			return nil
		})

	got, err := svc.Register(context.Background(), account.RegisterParams{
		Username: "ketoan01",
		Password: "s3cret",
		Role:     auth.RoleAccountant,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, auth.RoleAccountant, got.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(got.PasswordHash, []byte("s3cret")))
}

func TestService_Register_InvalidRole(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Register(context.Background(), account.RegisterParams{
		Username: "someone",
		Password: "pw",
		Role:     auth.Role("janitor"),
	})
	assert.ErrorIs(t, err, account.ErrInvalidRole)
	assert.Nil(t, got)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(account.ErrDuplicateUsername)

	got, err := svc.Register(context.Background(), account.RegisterParams{
		Username: "ketoan01",
		Password: "pw",
		Role:     auth.RoleAccountant,
	})
	assert.ErrorIs(t, err, account.ErrDuplicateUsername)
	assert.Nil(t, got)
}

func TestService_Login(t *testing.T) {
	svc, repo := newService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &account.Account{
		ID:           uuid.New(),
		Username:     "ketoan01",
		PasswordHash: hash,
		Role:         auth.RoleAccountant,
	}

	repo.EXPECT().
		GetAccountByUsername(gomock.Any(), "ketoan01").
		Return(stored, nil)

	acc, token, err := svc.Login(context.Background(), "ketoan01", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, stored, acc)
	assert.NotEmpty(t, token)
}

func TestService_Login_BadPassword(t *testing.T) {
	svc, repo := newService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		GetAccountByUsername(gomock.Any(), "ketoan01").
		Return(&account.Account{Username: "ketoan01", PasswordHash: hash}, nil)

	acc, token, err := svc.Login(context.Background(), "ketoan01", "wrong")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
	assert.Nil(t, acc)
	assert.Empty(t, token)
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc, repo := newService(t)

	// Unknown username and bad password are indistinguishable to the caller.
	repo.EXPECT().
		GetAccountByUsername(gomock.Any(), "ghost").
		Return(nil, account.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestService_UpdateRole(t *testing.T) {
	svc, repo := newService(t)

	id := uuid.New()

	repo.EXPECT().
		GetAccount(gomock.Any(), id).
		Return(&account.Account{ID: id, Role: auth.RoleManager}, nil)
	repo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *account.Account) error {
			assert.Equal(t, auth.RoleAccountant, acc.Role)
			return nil
		})

	assert.NoError(t, svc.UpdateRole(context.Background(), id, auth.RoleAccountant))
}

func TestService_UpdateRole_Invalid(t *testing.T) {
	svc, _ := newService(t)

	err := svc.UpdateRole(context.Background(), uuid.New(), auth.Role("janitor"))
	assert.ErrorIs(t, err, account.ErrInvalidRole)
}

func TestService_UpdatePassword(t *testing.T) {
	svc, repo := newService(t)

	id := uuid.New()

	repo.EXPECT().
		GetAccount(gomock.Any(), id).
		Return(&account.Account{ID: id}, nil)
	repo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *account.Account) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte("newpw")))
			return nil
		})

	assert.NoError(t, svc.UpdatePassword(context.Background(), id, "newpw"))
}
