package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/models"
)

type UsersPG struct{ DB *pgxpool.Pool }

func (r *UsersPG) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.Query(ctx, `select email, name, role from users order by email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Upsert inserts or updates the user keyed by email. Role is preserved on
// update; it only changes through PromoteAdmin.
func (r *UsersPG) Upsert(ctx context.Context, u models.User) error {
	_, err := r.DB.Exec(ctx, `
		insert into users(email, name, role)
		values ($1, $2, '')
		on conflict (email) do update set name = excluded.name
	`, u.Email, u.Name)
	return err
}

func (r *UsersPG) Role(ctx context.Context, email string) (string, error) {
	var role string
	err := r.DB.QueryRow(ctx, `select role from users where email = $1`, email).Scan(&role)
	return role, err
}

func (r *UsersPG) PromoteAdmin(ctx context.Context, email string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `update users set role = 'admin' where email = $1`, email)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
