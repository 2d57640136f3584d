package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mirror-store/internal/models"
)

type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id string) (models.Item, error)
	Insert(ctx context.Context, it models.Item) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ItemsHandler struct {
	Store ItemStore
	Log   zerolog.Logger
}

func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list items failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, items)
}

func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if isMiss(err) {
			writeJSON(w, nil)
			return
		}
		h.Log.Error().Err(err).Str("id", id).Msg("get item failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, it)
}

type createItemReq struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	PriceCents   int    `json:"price_cents"`
	MinOrderQty  int    `json:"min_order_qty"`
	AvailableQty int    `json:"available_qty"`
}

func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.PriceCents < 0 || req.MinOrderQty < 0 || req.AvailableQty < 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	it := models.Item{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PriceCents:   req.PriceCents,
		MinOrderQty:  req.MinOrderQty,
		AvailableQty: req.AvailableQty,
	}
	if err := h.Store.Insert(r.Context(), it); err != nil {
		h.Log.Error().Err(err).Msg("insert item failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"id": it.ID})
}

func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Str("id", id).Msg("delete item failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"deleted": deleted})
}
