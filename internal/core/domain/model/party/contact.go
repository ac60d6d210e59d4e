// Package party holds the contact directory record attached to every account
// that has participated in a delivery as sender, receiver, or courier.
package party

import (
	"deliveryescrow/internal/pkg/errs"
	"deliveryescrow/internal/pkg/guard"
)

// ErrContactNameIsRequired is returned when building a contact without a name.
var ErrContactNameIsRequired = errs.NewValueIsRequiredError("name")

// Contact is the directory record for one account: a display name plus optional
// phone and email. Records are written the first time an account participates
// in a role and may only be overwritten by the same account re-submitting;
// beyond that the directory enforces no invariants.
type Contact struct {
	name  string
	phone string
	email string

	guard guard.ConstructorGuard
}

// NewContact builds a contact record. Only the name is required; the source
// system accepted any phone and email bytes and this directory stays equally
// permissive.
func NewContact(name, phone, email string) (Contact, error) {
	if name == "" {
		return Contact{}, ErrContactNameIsRequired
	}

	return Contact{
		name:  name,
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the contact was created through NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactNameIsRequired)
}

// Name returns the display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the phone number, possibly empty.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the email address, possibly empty.
func (c Contact) Email() string {
	return c.email
}
