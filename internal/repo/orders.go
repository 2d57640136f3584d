package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type OrdersPG struct{ DB *pgxpool.Pool }

// Insert writes the order and its items in one transaction.
func (r *OrdersPG) Insert(ctx context.Context, o models.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		insert into orders(id, email, address, phone, total_cents, paid, transaction_id, status, created_at)
		values ($1, $2, $3, $4, $5, false, '', false, $6)
	`, o.ID, o.Email, o.Address, o.Phone, o.TotalCents, o.CreatedAt)
	if err != nil {
		return err
	}

	for _, it := range o.Items {
		_, err = tx.Exec(ctx, `
			insert into order_items(order_id, item_id, name, qty, price_cents)
			values ($1, $2, $3, $4, $5)
		`, o.ID, it.ItemID, it.Name, it.Qty, it.PriceCents)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *OrdersPG) List(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, `
		select id, email, address, phone, total_cents, paid, transaction_id, status, created_at
		from orders
		order by created_at desc
	`)
}

func (r *OrdersPG) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.list(ctx, `
		select id, email, address, phone, total_cents, paid, transaction_id, status, created_at
		from orders
		where email = $1
		order by created_at desc
	`, email)
}

func (r *OrdersPG) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Email, &o.Address, &o.Phone, &o.TotalCents,
			&o.Paid, &o.TransactionID, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.items(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrdersPG) Get(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := r.DB.QueryRow(ctx, `
		select id, email, address, phone, total_cents, paid, transaction_id, status, created_at
		from orders
		where id = $1
	`, id).Scan(&o.ID, &o.Email, &o.Address, &o.Phone, &o.TotalCents,
		&o.Paid, &o.TransactionID, &o.Status, &o.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}
	o.Items, err = r.items(ctx, o.ID)
	return o, err
}

func (r *OrdersPG) items(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.DB.Query(ctx, `
		select item_id, name, qty, price_cents
		from order_items
		where order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Qty, &it.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrdersPG) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `delete from orders where id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

// MarkPaid flags the order as paid with the gateway transaction id. It is a
// standalone write: the payment record insert is a separate operation with no
// transaction spanning the two.
func (r *OrdersPG) MarkPaid(ctx context.Context, id string, transactionID string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		update orders
		set paid = true,
		    transaction_id = $2,
		    status = true
		where id = $1
	`, id, transactionID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
