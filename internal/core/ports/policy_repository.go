package ports

import (
	"context"

	"deliveryescrow/internal/core/domain/model/commission"
)

// PolicyRepository stores the single process-wide commission rate. Only the
// owner mutates it (the authorization check lives in the command handler);
// every newly created delivery snapshots the value read here, and no change
// ever reaches an existing delivery.
type PolicyRepository interface {
	// Rate returns the current commission rate.
	Rate(ctx context.Context) (commission.Rate, error)

	// SetRate replaces the current commission rate.
	SetRate(ctx context.Context, rate commission.Rate) error
}
