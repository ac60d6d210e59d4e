// Package contactrepo provides data transfer objects and mapping functions
// for the contact directory: one record per account that has ever taken part
// in a delivery.
package contactrepo

import (
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// ContactDTO represents the database structure for persisting contact records.
type ContactDTO struct {
	Account uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Email   string
}

// TableName specifies the database table name for contact records.
func (ContactDTO) TableName() string {
	return "contacts"
}

func fromDomain(account kernel.Account, contact party.Contact) ContactDTO {
	return ContactDTO{
		Account: account.Bytes(),
		Name:    contact.Name(),
		Phone:   contact.Phone(),
		Email:   contact.Email(),
	}
}

func toDomain(dto ContactDTO) (party.Contact, error) {
	return party.NewContact(dto.Name, dto.Phone, dto.Email)
}
