package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/domain"
)

// UserRepo reads the user fields the notification core needs.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// Get - returns a user by its ID.
func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, locale FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Locale)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// UserLocale returns a user's preferred locale tag, nil when unset or unknown.
// Satisfies notifytext.UserLocales.
func (r *UserRepo) UserLocale(ctx context.Context, id int64) (*string, error) {
	var loc *string
	err := r.db.QueryRow(ctx,
		`SELECT locale FROM users WHERE id = $1`, id,
	).Scan(&loc)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("user locale %d: %w", id, err)
	}
	return loc, nil
}
