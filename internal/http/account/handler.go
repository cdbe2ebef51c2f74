package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/account"
	"github.com/hmdang/bluemoon/internal/auth"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

// AuthRoutes registers the public login endpoint and the authenticated
// identity endpoint.
func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/login", h.login)
}

// MeRoutes registers endpoints that need a verified token but no role.
func (h *Handler) MeRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

// Routes registers account administration endpoints (admin only; gating
// happens in the router).
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.register)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/role", h.updateRole)
	r.Patch("/{id}/password", h.updatePassword)
	r.Delete("/{id}", h.delete)
}

type accountResponse struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Role       auth.Role  `json:"role"`
	ResidentID *uuid.UUID `json:"resident_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		ID:         acc.ID,
		Username:   acc.Username,
		Role:       acc.Role,
		ResidentID: acc.ResidentID,
		CreatedAt:  acc.CreatedAt,
		UpdatedAt:  acc.UpdatedAt,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(loginResponse{Token: token, Account: toResponse(acc)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	acc, err := h.svc.Get(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type registerRequest struct {
	Username   string     `json:"username"`
	Password   string     `json:"password"`
	Role       auth.Role  `json:"role"`
	ResidentID *uuid.UUID `json:"resident_id,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Register(r.Context(), account.RegisterParams{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		ResidentID: req.ResidentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, account.ErrDuplicateUsername):
			http.Error(w, "username already taken", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = toResponse(acc)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRoleRequest struct {
	Role auth.Role `json:"role"`
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateRole(r.Context(), id, req.Role); err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, account.ErrNotFound):
			http.Error(w, "account not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdatePassword(r.Context(), id, req.Password); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
