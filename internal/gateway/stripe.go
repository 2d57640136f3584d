package gateway

import (
	"context"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Stripe creates card payment intents. The caller finishes the charge
// client-side with the returned secret.
type Stripe struct {
	API *client.API
}

func NewStripe(secretKey string) *Stripe {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{API: api}
}

func (s *Stripe) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := s.API.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
