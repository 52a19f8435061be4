package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/domain"
)

// DeliveryRepo represents the delivery repository.
type DeliveryRepo struct{ db *pgxpool.Pool }

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo { return &DeliveryRepo{db: db} }

const deliveryColumns = `id, type, sender_id, receiver_id, from_country, from_city,
	to_country, to_city, status, deleted_at, created_at`

func scanDelivery(row interface{ Scan(...any) error }, d *domain.Delivery) error {
	return row.Scan(&d.ID, &d.Type, &d.SenderID, &d.ReceiverID,
		&d.FromCountry, &d.FromCity, &d.ToCountry, &d.ToCity,
		&d.Status, &d.DeletedAt, &d.CreatedAt)
}

// Create - creates a new delivery post and returns its id.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.Delivery) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO deliveries (type, sender_id, from_country, from_city, to_country, to_city, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, string(d.Type), d.SenderID,
		d.FromCountry, d.FromCity, d.ToCountry, d.ToCity,
		string(d.Status)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create delivery: %w", err)
	}
	return id, nil
}

// Get - returns a delivery by its ID. Soft-deleted rows are not returned.
func (r *DeliveryRepo) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	var d domain.Delivery
	err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1 AND deleted_at IS NULL`, id), &d)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return &d, nil
}

// ListDelivered returns every delivered, non-deleted delivery with a matched
// receiver: the candidate set for rating reminders.
func (r *DeliveryRepo) ListDelivered(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE status = $1
          AND receiver_id IS NOT NULL
          AND deleted_at IS NULL
        ORDER BY id
    `, string(domain.StatusDelivered))
	if err != nil {
		return nil, fmt.Errorf("list delivered: %w", err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		if err := scanDelivery(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
