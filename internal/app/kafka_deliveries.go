package app

import (
	"context"
	"fmt"

	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/transport/kafka"
)

type deliveryGetter interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

type alertMatcher interface {
	Notify(ctx context.Context, d domain.Delivery) int
}

// makeDeliveriesKafka builds the handler for delivery lifecycle events. The
// event only carries the delivery id; the row is re-read so matching always
// sees the current state and not the producer's snapshot.
func makeDeliveriesKafka(deliveries deliveryGetter, m alertMatcher) kafka.HandleFunc {
	return func(ctx context.Context, ev kafka.Event) error {
		d, err := deliveries.Get(ctx, ev.DeliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			// deleted before we got to it, retrying will not help
			return kafka.Permanent(fmt.Errorf("delivery %d not found", ev.DeliveryID))
		}
		m.Notify(ctx, *d)
		return nil
	}
}
