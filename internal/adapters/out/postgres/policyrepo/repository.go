// Package policyrepo persists the single process-wide commission rate.
package policyrepo

import (
	"context"
	"errors"

	"deliveryescrow/internal/core/domain/model/commission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// policyRowID is the key of the only row in the policy table.
const policyRowID = 1

// PolicyDTO represents the database structure for the commission policy.
// The table holds exactly one row.
type PolicyDTO struct {
	ID   int `gorm:"primaryKey"`
	Rate int
}

// TableName specifies the database table name for the commission policy.
func (PolicyDTO) TableName() string {
	return "commission_policy"
}

// GormPolicyRepository implements PolicyRepository using GORM.
type GormPolicyRepository struct {
	db *gorm.DB
}

// NewGormPolicyRepository creates a new GORM policy repository.
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{db: db}
}

// Rate returns the current commission rate. Before the first SetRate the
// table is empty and the default rate applies.
func (r *GormPolicyRepository) Rate(ctx context.Context) (commission.Rate, error) {
	var dto PolicyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", policyRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commission.DefaultRate, nil
		}
		return 0, err
	}

	return commission.NewRate(dto.Rate)
}

// SetRate replaces the current commission rate.
func (r *GormPolicyRepository) SetRate(ctx context.Context, rate commission.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	dto := PolicyDTO{ID: policyRowID, Rate: rate.Int()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate"}),
		}).
		Create(&dto).Error
}
