package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/domain"
)

// ConversationRepo reads conversations and their messages.
type ConversationRepo struct{ db *pgxpool.Pool }

// NewConversationRepo creates a new ConversationRepo.
func NewConversationRepo(db *pgxpool.Pool) *ConversationRepo { return &ConversationRepo{db: db} }

// FindForDeliveryPair returns the conversation between the two users for the
// given delivery, or nil when none exists.
func (r *ConversationRepo) FindForDeliveryPair(ctx context.Context, deliveryID, userA, userB int64) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.QueryRow(ctx, `
        SELECT id, delivery_id, participant1_id, participant2_id
        FROM conversations
        WHERE delivery_id = $1
          AND ((participant1_id = $2 AND participant2_id = $3)
            OR (participant1_id = $3 AND participant2_id = $2))
        LIMIT 1
    `, deliveryID, userA, userB).Scan(&c.ID, &c.DeliveryID, &c.Participant1, &c.Participant2)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find conversation for delivery %d: %w", deliveryID, err)
	}
	return &c, nil
}

// LatestConfirmation returns the createdAt of the most recent
// deliveryConfirmation message attached to any conversation of the delivery.
// Nil means the delivery was never confirmed and cannot be timed.
func (r *ConversationRepo) LatestConfirmation(ctx context.Context, deliveryID int64) (*time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, `
        SELECT m.created_at
        FROM messages m
        JOIN conversations c ON c.id = m.conversation_id
        WHERE c.delivery_id = $1 AND m.message_type = $2
        ORDER BY m.created_at DESC
        LIMIT 1
    `, deliveryID, domain.MessageTypeDeliveryConfirmation).Scan(&at)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest confirmation for delivery %d: %w", deliveryID, err)
	}
	return &at, nil
}
