package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery to the database. The Seq column is assigned by the
// database, which fixes the delivery's position in the enumeration order.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("hash = ?", aggregate.Hash().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewDuplicateIdentifierError(aggregate.Hash().String())
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("hash = ?", dto.Hash).
		Omit("seq").
		Updates(map[string]any{
			"courier":    dto.Courier,
			"start_time": dto.StartTime,
			"end_time":   dto.EndTime,
			"state":      dto.State,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.Hash().String())
	}

	return nil
}

// Get retrieves a delivery by its hash and locks the row for the duration of
// the surrounding transaction. Concurrent transitions on the same delivery
// serialize here: the second caller blocks until the first commits, then reads
// the already-advanced state and fails its own transition.
func (r *GormDeliveryRepository) Get(ctx context.Context, hash kernel.DeliveryHash) (*delivery.Delivery, error) {
	if err := hash.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "hash = ?", hash.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", hash.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a delivery with the given hash was ever created.
func (r *GormDeliveryRepository) Exists(ctx context.Context, hash kernel.DeliveryHash) (bool, error) {
	if err := hash.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("hash = ?", hash.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Count returns the number of deliveries ever created.
func (r *GormDeliveryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HashAt returns the identifier at the given insertion-order index.
func (r *GormDeliveryRepository) HashAt(ctx context.Context, index int64) (kernel.DeliveryHash, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return kernel.DeliveryHash{}, err
	}
	if index < 0 || index >= count {
		return kernel.DeliveryHash{}, errs.NewValueIsOutOfRangeError("index", index, 0, count-1)
	}

	var dto DeliveryDTO
	if err = r.db.WithContext(ctx).
		Select("hash").
		Order("seq").
		Offset(int(index)).
		First(&dto).Error; err != nil {
		return kernel.DeliveryHash{}, err
	}

	return kernel.DeliveryHashFromBytes(dto.Hash)
}

// GetAllStartedPastDeadline retrieves started deliveries whose deadline lies
// strictly before now.
func (r *GormDeliveryRepository) GetAllStartedPastDeadline(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("state = ? AND deadline < ?", int(delivery.Started), now).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
