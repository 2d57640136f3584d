package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type PaymentsPG struct{ DB *pgxpool.Pool }

func (r *PaymentsPG) Insert(ctx context.Context, p models.Payment) error {
	_, err := r.DB.Exec(ctx, `
		insert into payments(id, order_id, email, amount_cents, transaction_id, created_at)
		values ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.OrderID, p.Email, p.AmountCents, p.TransactionID, p.CreatedAt)
	return err
}
