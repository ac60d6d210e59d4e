package commands

import (
	"context"

	"deliveryescrow/internal/core/domain/services"
)

// ApplyToDeliveryCommandHandler handles the business logic for a courier
// accepting a delivery. Moves the caution deposit into custody and assigns
// the courier in a single transaction.
type ApplyToDeliveryCommandHandler struct {
	uowFactory EscrowUoWFactory
	settler    services.EscrowSettler
}

// NewApplyToDeliveryCommandHandler creates a handler for courier applications.
func NewApplyToDeliveryCommandHandler(
	uowFactory EscrowUoWFactory,
	settler services.EscrowSettler,
) ApplyToDeliveryCommandHandler {
	return ApplyToDeliveryCommandHandler{
		uowFactory: uowFactory,
		settler:    settler,
	}
}

// Handle processes the courier application command.
func (h ApplyToDeliveryCommandHandler) Handle(ctx context.Context, cmd ApplyToDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.Hash())
	if err != nil {
		return err
	}

	if err = aggregate.Apply(cmd.Courier(), cmd.Attached()); err != nil {
		return err
	}

	if err = h.settler.HoldCaution(ctx, uow.LedgerRepository(), cmd.Courier(), aggregate); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.ContactRepository().Upsert(ctx, cmd.Courier(), cmd.Contact()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
