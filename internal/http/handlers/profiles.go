package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mirror-store/internal/models"
)

type ProfileStore interface {
	Get(ctx context.Context, email string) (models.Profile, error)
	Insert(ctx context.Context, p models.Profile) error
	Update(ctx context.Context, p models.Profile) (bool, error)
}

type ProfilesHandler struct {
	Store ProfileStore
	Log   zerolog.Logger
}

func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	p, err := h.Store.Get(r.Context(), email)
	if err != nil {
		if isMiss(err) {
			writeJSON(w, nil)
			return
		}
		h.Log.Error().Err(err).Str("email", email).Msg("get profile failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, p)
}

type profileReq struct {
	Email     string `json:"email"`
	Education string `json:"education"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	ImageURL  string `json:"image_url"`
}

func (h *ProfilesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req profileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	p := models.Profile{
		Email:     req.Email,
		Education: req.Education,
		Location:  req.Location,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
		ImageURL:  req.ImageURL,
	}
	if err := h.Store.Insert(r.Context(), p); err != nil {
		h.Log.Error().Err(err).Str("email", req.Email).Msg("insert profile failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"email": p.Email})
}

func (h *ProfilesHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	var req profileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	p := models.Profile{
		Email:     email,
		Education: req.Education,
		Location:  req.Location,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
		ImageURL:  req.ImageURL,
	}
	updated, err := h.Store.Update(r.Context(), p)
	if err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("update profile failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"updated": updated})
}
