//go:build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bagami/notify/internal/repository"
)

var tcPool *pgxpool.Pool

var tcDSN string

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after conn string error: %v", termErr)
		}
		log.Fatalf("failed to get connection string from container: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after pool create error: %v", termErr)
		}
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after ping error: %v", termErr)
		}
		log.Fatalf("failed to ping postgres in testcontainer: %v", err)
	}

	tcPool = pool
	tcDSN = connStr

	if err := repository.Migrate(tcDSN); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after migrate error: %v", termErr)
		}
		log.Fatalf("failed to migrate test schema: %v", err)
	}

	code := m.Run()

	pool.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate postgres container: %v", err)
	}

	os.Exit(code)
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE notifications, reviews, messages, conversations, alerts, deliveries, users
		RESTART IDENTITY CASCADE
	`)
	return err
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, name string, locale *string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, locale) VALUES ($1, $2) RETURNING id`,
		name, locale).Scan(&id)
	return id, err
}

func seedDelivery(ctx context.Context, pool *pgxpool.Pool, typ string, senderID int64, receiverID *int64, status string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO deliveries (type, sender_id, receiver_id, from_country, from_city, to_country, to_city, status)
		VALUES ($1, $2, $3, 'France', 'Paris', 'Senegal', 'Dakar', $4)
		RETURNING id
	`, typ, senderID, receiverID, status).Scan(&id)
	return id, err
}

func seedConversation(ctx context.Context, pool *pgxpool.Pool, deliveryID, p1, p2 int64) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO conversations (delivery_id, participant1_id, participant2_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, deliveryID, p1, p2).Scan(&id)
	return id, err
}

func seedMessage(ctx context.Context, pool *pgxpool.Pool, conversationID, senderID int64, msgType string, at time.Time) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO messages (conversation_id, sender_id, message_type, created_at)
		VALUES ($1, $2, $3, $4)
	`, conversationID, senderID, msgType, at)
	return err
}
