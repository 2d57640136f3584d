package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type ReviewsPG struct{ DB *pgxpool.Pool }

func (r *ReviewsPG) List(ctx context.Context) ([]models.Review, error) {
	rows, err := r.DB.Query(ctx, `
		select id, email, name, rating, comment, created_at
		from reviews
		order by created_at desc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.Email, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewsPG) Insert(ctx context.Context, rv models.Review) error {
	_, err := r.DB.Exec(ctx, `
		insert into reviews(id, email, name, rating, comment, created_at)
		values ($1, $2, $3, $4, $5, $6)
	`, rv.ID, rv.Email, rv.Name, rv.Rating, rv.Comment, rv.CreatedAt)
	return err
}
