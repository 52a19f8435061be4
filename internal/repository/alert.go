package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/domain"
)

// AlertRepo represents the saved-search repository.
type AlertRepo struct{ db *pgxpool.Pool }

// NewAlertRepo creates a new AlertRepo.
func NewAlertRepo(db *pgxpool.Pool) *AlertRepo { return &AlertRepo{db: db} }

const alertColumns = `id, user_id, alert_type, departure_country, departure_city,
	destination_country, destination_city, is_active, created_at`

func scanAlert(row interface{ Scan(...any) error }, a *domain.Alert) error {
	return row.Scan(&a.ID, &a.UserID, &a.Type,
		&a.DepartureCountry, &a.DepartureCity,
		&a.DestinationCountry, &a.DestinationCity,
		&a.IsActive, &a.CreatedAt)
}

// Create - creates a new alert and returns its id.
func (r *AlertRepo) Create(ctx context.Context, a *domain.Alert) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO alerts (user_id, alert_type, departure_country, departure_city,
                            destination_country, destination_city, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, a.UserID, string(a.Type),
		a.DepartureCountry, a.DepartureCity,
		a.DestinationCountry, a.DestinationCity,
		a.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create alert: %w", err)
	}
	return id, nil
}

// ListActive returns every active alert in one pass; alert volume is small
// enough that pagination is not needed here.
func (r *AlertRepo) ListActive(ctx context.Context) ([]domain.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()

	var out []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListByUser returns a user's alerts ordered by creation.
func (r *AlertRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list alerts for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]domain.Alert, 0)
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes an alert owned by userID; returns true if a row was deleted.
func (r *AlertRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM alerts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete alert %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
