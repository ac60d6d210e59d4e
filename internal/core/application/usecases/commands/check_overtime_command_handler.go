package commands

import (
	"context"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/services"
	"deliveryescrow/internal/core/ports"
)

// CheckOvertimeCommandHandler handles the business logic for overtime checks.
// An on-time check is a pure probe and changes nothing. A late check ends the
// delivery and forfeits the whole escrow to the sender, reward and caution
// deposit alike, in a single transaction.
type CheckOvertimeCommandHandler struct {
	uowFactory SettlementUoWFactory
	settler    services.EscrowSettler
	publisher  ports.NotificationPublisher
	clock      Clock
}

// NewCheckOvertimeCommandHandler creates a handler for overtime checks.
func NewCheckOvertimeCommandHandler(
	uowFactory SettlementUoWFactory,
	settler services.EscrowSettler,
	publisher ports.NotificationPublisher,
	clock Clock,
) CheckOvertimeCommandHandler {
	return CheckOvertimeCommandHandler{
		uowFactory: uowFactory,
		settler:    settler,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the overtime check command. Returns true when the delivery
// is still within its deadline and false when it was ended for overtime.
func (h CheckOvertimeCommandHandler) Handle(ctx context.Context, cmd CheckOvertimeCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.Hash())
	if err != nil {
		return false, err
	}

	isOnTime, err := aggregate.CheckOvertime(cmd.Caller(), h.clock())
	if err != nil {
		return false, err
	}

	if !isOnTime {
		if err = h.settler.ForfeitOnOvertime(ctx, uow.LedgerRepository(), aggregate); err != nil {
			return false, err
		}

		if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	// Best effort after commit; the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, delivery.DeadlineCheckEvent{
		Hash:     aggregate.Hash().String(),
		IsOnTime: isOnTime,
	})

	return isOnTime, nil
}
