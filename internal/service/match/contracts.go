//go:generate mockgen -source=contracts.go -destination=match_mocks_test.go -package=match_test

package match

import (
	"context"

	"github.com/bagami/notify/internal/domain"
)

// AlertSource lists the saved searches to evaluate against a new delivery.
type AlertSource interface {
	ListActive(ctx context.Context) ([]domain.Alert, error)
}

// NotificationSink persists the notifications produced by matching.
type NotificationSink interface {
	Create(ctx context.Context, n *domain.Notification) (bool, error)
}

type counter interface {
	Inc()
}
