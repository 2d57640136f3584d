package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mirror-store/internal/events"
	"mirror-store/internal/models"
)

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type PaymentIntentHandler struct {
	Gateway PaymentGateway
	Log     zerolog.Logger
}

type paymentIntentReq struct {
	Price float64 `json:"price"`
}

func (h *PaymentIntentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	amount := int64(math.Round(req.Price * 100))
	secret, err := h.Gateway.CreateIntent(r.Context(), amount, "usd")
	if err != nil {
		h.Log.Error().Err(err).Msg("create payment intent failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"clientSecret": secret})
}

type PaymentStore interface {
	Insert(ctx context.Context, p models.Payment) error
}

type OrderPayer interface {
	MarkPaid(ctx context.Context, id string, transactionID string) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// ConfirmPaymentHandler records the payment and marks the order paid. The two
// writes are independent; a failure between them leaves the payment recorded
// and the order unpatched.
type ConfirmPaymentHandler struct {
	Payments PaymentStore
	Orders   OrderPayer
	Events   EventPublisher
	Log      zerolog.Logger
}

type confirmPaymentReq struct {
	Email         string `json:"email"`
	AmountCents   int    `json:"amount_cents"`
	TransactionID string `json:"transaction_id"`
}

func (h *ConfirmPaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	var req confirmPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.TransactionID == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	p := models.Payment{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Email:         req.Email,
		AmountCents:   req.AmountCents,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.Payments.Insert(r.Context(), p); err != nil {
		h.Log.Error().Err(err).Str("order_id", orderID).Msg("insert payment failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	updated, err := h.Orders.MarkPaid(r.Context(), orderID, req.TransactionID)
	if err != nil {
		h.Log.Error().Err(err).Str("order_id", orderID).Msg("mark order paid failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.Events != nil {
		evt := events.NewOrderPaid(orderID, req.Email, req.TransactionID)
		if err := h.Events.Publish(r.Context(), events.KeyOrderPaid, evt); err != nil {
			h.Log.Warn().Err(err).Str("order_id", orderID).Msg("publish order.paid failed")
		}
	}

	writeJSON(w, map[string]any{
		"payment_id": p.ID,
		"updated":    updated,
	})
}
