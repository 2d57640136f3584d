package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mirror-store/internal/auth"
	"mirror-store/internal/models"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, u models.User) error
	Role(ctx context.Context, email string) (string, error)
	PromoteAdmin(ctx context.Context, email string) (bool, error)
}

type UsersHandler struct {
	Store  UserStore
	Tokens *auth.TokenService
	Log    zerolog.Logger
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list users failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, users)
}

type upsertUserReq struct {
	Name string `json:"name"`
}

type upsertUserResp struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Upsert creates or refreshes the user keyed by the path email and hands back
// a freshly issued token for that identity. This is the login path: it is the
// only route that mints tokens.
func (h *UsersHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		http.Error(w, "missing email", http.StatusBadRequest)
		return
	}
	var req upsertUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if err := h.Store.Upsert(r.Context(), models.User{Email: email, Name: req.Name}); err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("upsert user failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := h.Tokens.Issue(auth.Identity{Email: email})
	if err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("issue token failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, upsertUserResp{Email: email, Token: token})
}

func (h *UsersHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	updated, err := h.Store.PromoteAdmin(r.Context(), email)
	if err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("promote admin failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"updated": updated})
}

// IsAdmin reports whether the stored role for the path email is admin. An
// unknown email reports false rather than faulting.
func (h *UsersHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	role, err := h.Store.Role(r.Context(), email)
	if err != nil && !isMiss(err) {
		h.Log.Error().Err(err).Str("email", email).Msg("role lookup failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"admin": role == auth.RoleAdmin})
}
