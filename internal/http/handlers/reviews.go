package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mirror-store/internal/models"
)

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	Insert(ctx context.Context, rv models.Review) error
}

type ReviewsHandler struct {
	Store ReviewStore
	Log   zerolog.Logger
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list reviews failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, reviews)
}

type createReviewReq struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Rating < 1 || req.Rating > 5 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	rv := models.Review{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.Insert(r.Context(), rv); err != nil {
		h.Log.Error().Err(err).Msg("insert review failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"id": rv.ID})
}
