package ports

import (
	"context"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"
)

// ContactRepository is the identity and contact directory. Records are written
// the first time an account participates in a role and can only be overwritten
// by the same account re-submitting.
type ContactRepository interface {
	// Upsert writes or refreshes the contact record for an account.
	Upsert(ctx context.Context, account kernel.Account, contact party.Contact) error

	// Get retrieves the contact record for an account. A directory miss is not
	// an error: the second return value reports whether a record exists, and
	// callers render an empty default otherwise.
	Get(ctx context.Context, account kernel.Account) (party.Contact, bool, error)
}
