package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type ProfilesPG struct{ DB *pgxpool.Pool }

func (r *ProfilesPG) Get(ctx context.Context, email string) (models.Profile, error) {
	var p models.Profile
	err := r.DB.QueryRow(ctx, `
		select email, education, location, phone, linkedin, image_url
		from profiles
		where email = $1
	`, email).Scan(&p.Email, &p.Education, &p.Location, &p.Phone, &p.LinkedIn, &p.ImageURL)
	return p, err
}

func (r *ProfilesPG) Insert(ctx context.Context, p models.Profile) error {
	_, err := r.DB.Exec(ctx, `
		insert into profiles(email, education, location, phone, linkedin, image_url)
		values ($1, $2, $3, $4, $5, $6)
	`, p.Email, p.Education, p.Location, p.Phone, p.LinkedIn, p.ImageURL)
	return err
}

// Update patches the profile keyed by email.
func (r *ProfilesPG) Update(ctx context.Context, p models.Profile) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		update profiles
		set education = $2,
		    location = $3,
		    phone = $4,
		    linkedin = $5,
		    image_url = $6
		where email = $1
	`, p.Email, p.Education, p.Location, p.Phone, p.LinkedIn, p.ImageURL)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
