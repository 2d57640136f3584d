package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mirror-store/internal/auth"
	"mirror-store/internal/models"
)

type OrderStore interface {
	Insert(ctx context.Context, o models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OrdersHandler struct {
	Store OrderStore
	Log   zerolog.Logger
}

type createOrderReq struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Items   []struct {
		ItemID     string `json:"item_id"`
		Name       string `json:"name"`
		Qty        int    `json:"qty"`
		PriceCents int    `json:"price_cents"`
	} `json:"items"`
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Email == "" || len(req.Items) == 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	for _, it := range req.Items {
		if it.Name == "" || it.Qty <= 0 || it.PriceCents < 0 {
			http.Error(w, "invalid items", http.StatusBadRequest)
			return
		}
	}

	o := models.Order{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range req.Items {
		o.Items = append(o.Items, models.OrderItem{
			ItemID:     it.ItemID,
			Name:       it.Name,
			Qty:        it.Qty,
			PriceCents: it.PriceCents,
		})
		o.TotalCents += it.PriceCents * it.Qty
	}

	if err := h.Store.Insert(r.Context(), o); err != nil {
		h.Log.Error().Err(err).Msg("insert order failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"id": o.ID})
}

// List serves both "list mine" and "list all": with an email query the caller
// must own that email; with no email query the whole collection comes back
// after token verification alone.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != "" {
		id, ok := auth.IdentityFrom(r.Context())
		if !ok || id.Email != email {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}
		orders, err := h.Store.ListByEmail(r.Context(), email)
		if err != nil {
			h.Log.Error().Err(err).Str("email", email).Msg("list orders failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, orders)
		return
	}

	orders, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list orders failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, orders)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if isMiss(err) {
			writeJSON(w, nil)
			return
		}
		h.Log.Error().Err(err).Str("id", id).Msg("get order failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, o)
}

func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Str("id", id).Msg("delete order failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"deleted": deleted})
}
