package commands

import (
	"context"
	"time"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/services"
	"deliveryescrow/internal/core/ports"
)

// StartDeliveryCommandHandler handles the business logic for starting a
// delivery. Records the start time and moves the sender's reward into
// custody in a single transaction.
type StartDeliveryCommandHandler struct {
	uowFactory SettlementUoWFactory
	settler    services.EscrowSettler
	publisher  ports.NotificationPublisher
	clock      Clock
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(
	uowFactory SettlementUoWFactory,
	settler services.EscrowSettler,
	publisher ports.NotificationPublisher,
	clock Clock,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		settler:    settler,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the start command and returns the recorded start time.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return time.Time{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.Hash())
	if err != nil {
		return time.Time{}, err
	}

	if err = aggregate.Start(cmd.Caller(), cmd.Attached(), h.clock()); err != nil {
		return time.Time{}, err
	}

	if err = h.settler.HoldReward(ctx, uow.LedgerRepository(), aggregate); err != nil {
		return time.Time{}, err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return time.Time{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return time.Time{}, err
	}

	// Best effort after commit; the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, delivery.StartedEvent{
		Hash:      aggregate.Hash().String(),
		StartTime: aggregate.StartTime(),
	})

	return aggregate.StartTime(), nil
}
