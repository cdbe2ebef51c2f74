package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdang/bluemoon/internal/auth"
)

func TestTokenManager_Roundtrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := tm.Issue(accountID, auth.RoleAccountant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, auth.RoleAccountant, claims.Role)
}

func TestTokenManager_Verify_Invalid(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not-a-token"},
		{name: "Empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tm.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(uuid.New(), auth.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(uuid.New(), auth.RoleManager)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthenticator(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	accountID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, accountID, claims.AccountID)
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.Authenticator(tm)(next)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tm.Issue(accountID, auth.RoleManager)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NoBearerPrefix", func(t *testing.T) {
		token, err := tm.Issue(accountID, auth.RoleManager)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(t *testing.T, role auth.Role, required ...auth.Role) int {
		t.Helper()

		token, err := tm.Issue(uuid.New(), role)
		require.NoError(t, err)

		handler := auth.Authenticator(tm)(auth.RequireRole(required...)(ok))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve(t, auth.RoleAccountant, auth.RoleAccountant))
	assert.Equal(t, http.StatusForbidden, serve(t, auth.RoleManager, auth.RoleAccountant))

	// Admin passes every gate.
	assert.Equal(t, http.StatusOK, serve(t, auth.RoleAdmin, auth.RoleAccountant))
	assert.Equal(t, http.StatusOK, serve(t, auth.RoleAdmin, auth.RoleManager))
}
