// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The hash is the primary key; Seq is a database-assigned
// insertion counter that backs dense index enumeration. Rows are never
// deleted, so the enumeration order is stable for the lifetime of the system.
type DeliveryDTO struct {
	Hash          []byte     `gorm:"type:bytea;primaryKey"`
	Seq           int64      `gorm:"autoIncrement;uniqueIndex"`
	Sender        uuid.UUID  `gorm:"type:uuid;index"`
	Receiver      uuid.UUID  `gorm:"type:uuid;index"`
	Courier       *uuid.UUID `gorm:"type:uuid;index"`
	FromAddress   string
	ToAddress     string
	Reward        uint64
	CautionAmount uint64
	Deadline      time.Time
	StartTime     time.Time
	EndTime       time.Time
	RateSnapshot  int
	State         int `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courier *uuid.UUID
	if c := aggregate.Courier(); c != nil {
		raw := c.Bytes()
		courier = &raw
	}

	return DeliveryDTO{
		Hash:          aggregate.Hash().Bytes(),
		Sender:        aggregate.Sender().Bytes(),
		Receiver:      aggregate.Receiver().Bytes(),
		Courier:       courier,
		FromAddress:   aggregate.FromAddress(),
		ToAddress:     aggregate.ToAddress(),
		Reward:        aggregate.Reward().Units(),
		CautionAmount: aggregate.CautionAmount().Units(),
		Deadline:      aggregate.Deadline(),
		StartTime:     aggregate.StartTime(),
		EndTime:       aggregate.EndTime(),
		RateSnapshot:  aggregate.CommissionRate().Int(),
		State:         int(aggregate.State()),
	}
}

// toDomain converts a database row back to a delivery aggregate using
// RestoreDelivery, which skips creation-time checks such as the deadline
// lying in the future.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	hash, err := kernel.DeliveryHashFromBytes(dto.Hash)
	if err != nil {
		return nil, err
	}

	sender, err := kernel.AccountFromBytes(dto.Sender[:])
	if err != nil {
		return nil, err
	}

	receiver, err := kernel.AccountFromBytes(dto.Receiver[:])
	if err != nil {
		return nil, err
	}

	var courier *kernel.Account
	if dto.Courier != nil {
		c, courierErr := kernel.AccountFromBytes((*dto.Courier)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &c
	}

	rate, err := commission.NewRate(dto.RateSnapshot)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		hash, sender, receiver, courier,
		dto.FromAddress, dto.ToAddress,
		kernel.NewMoney(dto.Reward), kernel.NewMoney(dto.CautionAmount),
		dto.Deadline, dto.StartTime, dto.EndTime,
		rate, delivery.State(dto.State),
	)
}
