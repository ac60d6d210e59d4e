package commands

import (
	"context"
	"time"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/services"
	"deliveryescrow/internal/core/ports"
)

// SignReceiptCommandHandler handles the business logic for receipt signing.
// Records the end time and settles escrow in a single transaction: commission
// to the owner, the remaining reward and the caution refund to the courier.
type SignReceiptCommandHandler struct {
	uowFactory SettlementUoWFactory
	settler    services.EscrowSettler
	publisher  ports.NotificationPublisher
	clock      Clock
}

// NewSignReceiptCommandHandler creates a handler for receipt signing.
func NewSignReceiptCommandHandler(
	uowFactory SettlementUoWFactory,
	settler services.EscrowSettler,
	publisher ports.NotificationPublisher,
	clock Clock,
) SignReceiptCommandHandler {
	return SignReceiptCommandHandler{
		uowFactory: uowFactory,
		settler:    settler,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the receipt signing command and returns the recorded
// end time.
func (h SignReceiptCommandHandler) Handle(ctx context.Context, cmd SignReceiptCommand) (time.Time, error) {
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

	if err = aggregate.SignReceipt(cmd.Caller(), h.clock()); err != nil {
		return time.Time{}, err
	}

	if err = h.settler.PayoutOnReceipt(ctx, uow.LedgerRepository(), aggregate); err != nil {
		return time.Time{}, err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return time.Time{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return time.Time{}, err
	}

	// Best effort after commit; the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, delivery.EndedEvent{
		Hash:    aggregate.Hash().String(),
		EndTime: aggregate.EndTime(),
	})

	return aggregate.EndTime(), nil
}
