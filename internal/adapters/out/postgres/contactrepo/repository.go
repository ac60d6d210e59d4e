package contactrepo

import (
	"context"
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContactRepository implements ContactRepository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Upsert writes or refreshes the contact record for an account. Re-submitting
// overwrites the previous record in place.
func (r *GormContactRepository) Upsert(ctx context.Context, account kernel.Account, contact party.Contact) error {
	if err := errors.Join(account.Validate(), contact.Validate()); err != nil {
		return err
	}

	dto := fromDomain(account, contact)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "email"}),
		}).
		Create(&dto).Error
}

// Get retrieves the contact record for an account. A missing record is
// reported through the boolean, not as an error.
func (r *GormContactRepository) Get(ctx context.Context, account kernel.Account) (party.Contact, bool, error) {
	if err := account.Validate(); err != nil {
		return party.Contact{}, false, err
	}

	var dto ContactDTO
	if err := r.db.WithContext(ctx).First(&dto, "account = ?", account.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return party.Contact{}, false, nil
		}
		return party.Contact{}, false, err
	}

	contact, err := toDomain(dto)
	if err != nil {
		return party.Contact{}, false, err
	}

	return contact, true, nil
}
