// Package redispub broadcasts delivery notifications over Redis pub/sub.
// Each notification kind is its own channel, so observers subscribe to the
// transitions they care about ("delivery.started", "delivery.ended", ...).
package redispub

import (
	"context"
	"encoding/json"
	"log/slog"

	"deliveryescrow/internal/core/domain/model/delivery"

	"github.com/go-redis/redis/v8"
)

// Publisher implements ports.NotificationPublisher over a Redis connection.
// Publishing is best effort: failures are logged and returned, and callers
// fire after commit so a broadcast problem never unwinds a settled transition.
type Publisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewPublisher creates a publisher over an established Redis client.
func NewPublisher(client *redis.Client, logger *slog.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

// Publish serializes the notification to JSON and sends it on the channel
// named after its kind.
func (p *Publisher) Publish(ctx context.Context, notification delivery.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		p.logger.Error("marshal notification",
			slog.String("kind", notification.Kind()),
			slog.Any("error", err))
		return err
	}

	if err = p.client.Publish(ctx, notification.Kind(), payload).Err(); err != nil {
		p.logger.Error("publish notification",
			slog.String("kind", notification.Kind()),
			slog.Any("error", err))
		return err
	}

	return nil
}

// Close releases the underlying Redis connection.
func (p *Publisher) Close() error {
	return p.client.Close()
}
