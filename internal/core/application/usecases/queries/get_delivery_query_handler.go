package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a delivery record from the database.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. The commission figures are computed from the
// delivery's own rate snapshot so a later policy change never shows through.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			hash,
			sender,
			receiver,
			courier,
			from_address,
			to_address,
			reward,
			caution_amount,
			deadline,
			start_time,
			end_time,
			rate_snapshot,
			state
		FROM deliveries
		WHERE hash = ?
	`, query.Hash().Bytes()).Row()

	var (
		resp     GetDeliveryQueryResponse
		hash     []byte
		sender   uuid.UUID
		receiver uuid.UUID
		courier  *uuid.UUID
		deadline time.Time
		start    sql.NullTime
		end      sql.NullTime
		rate     int
		state    int
	)

	err := row.Scan(
		&hash, &sender, &receiver, &courier,
		&resp.FromAddress, &resp.ToAddress,
		&resp.Reward, &resp.CautionAmount,
		&deadline, &start, &end, &rate, &state,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", query.Hash().String())
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	deliveryHash, err := kernel.DeliveryHashFromBytes(hash)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	resp.Hash = deliveryHash.String()
	resp.Sender = sender.String()
	resp.Receiver = receiver.String()
	if courier != nil {
		resp.Courier = courier.String()
	}
	resp.Deadline = deadline
	if start.Valid {
		resp.StartTime = start.Time
	}
	if end.Valid {
		resp.EndTime = end.Time
	}

	snapshot, err := commission.NewRate(rate)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	resp.CommissionRate = snapshot.Int()
	resp.Commission = snapshot.Apply(kernel.NewMoney(resp.Reward)).Units()
	resp.CourierPayout = resp.Reward - resp.Commission
	resp.State = delivery.State(state).String()

	return resp, nil
}
