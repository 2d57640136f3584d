package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type ItemsPG struct{ DB *pgxpool.Pool }

func (r *ItemsPG) List(ctx context.Context) ([]models.Item, error) {
	rows, err := r.DB.Query(ctx, `
		select id, name, description, image_url, price_cents, min_order_qty, available_qty
		from items
		order by name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL,
			&it.PriceCents, &it.MinOrderQty, &it.AvailableQty); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemsPG) Get(ctx context.Context, id string) (models.Item, error) {
	var it models.Item
	err := r.DB.QueryRow(ctx, `
		select id, name, description, image_url, price_cents, min_order_qty, available_qty
		from items
		where id = $1
	`, id).Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL,
		&it.PriceCents, &it.MinOrderQty, &it.AvailableQty)
	return it, err
}

func (r *ItemsPG) Insert(ctx context.Context, it models.Item) error {
	_, err := r.DB.Exec(ctx, `
		insert into items(id, name, description, image_url, price_cents, min_order_qty, available_qty)
		values ($1, $2, $3, $4, $5, $6, $7)
	`, it.ID, it.Name, it.Description, it.ImageURL, it.PriceCents, it.MinOrderQty, it.AvailableQty)
	return err
}

func (r *ItemsPG) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `delete from items where id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
