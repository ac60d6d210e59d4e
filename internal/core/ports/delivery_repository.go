package ports

import (
	"context"
	"time"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
)

// DeliveryRepository is the registry of delivery aggregates. Besides keyed
// access it maintains an insertion-ordered sequence of identifiers so callers
// can enumerate deliveries by dense index; nothing is ever deleted.
type DeliveryRepository interface {
	// Add persists a new delivery and appends its hash to the enumeration
	// order. Fails with a DuplicateIdentifierError if the derived hash
	// already exists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its hash, or an ObjectNotFoundError.
	Get(ctx context.Context, hash kernel.DeliveryHash) (*delivery.Delivery, error)

	// Exists reports whether a delivery with the given hash was ever created.
	Exists(ctx context.Context, hash kernel.DeliveryHash) (bool, error)

	// Count returns the number of deliveries ever created.
	Count(ctx context.Context) (int64, error)

	// HashAt returns the identifier at the given insertion-order index.
	// Fails with a ValueIsOutOfRangeError past the end of the sequence.
	HashAt(ctx context.Context, index int64) (kernel.DeliveryHash, error)

	// GetAllStartedPastDeadline retrieves started deliveries whose deadline
	// lies before now. Used by the background deadline watch; it reads only.
	GetAllStartedPastDeadline(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)
}
