package ports

import (
	"context"

	"deliveryescrow/internal/core/domain/model/delivery"
)

// NotificationPublisher broadcasts the outcome of committed transitions to
// interested observers. Publishing happens after the unit of work commits and
// is best effort: a failed broadcast never unwinds a settled transition.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification delivery.Notification) error
}
