package commands

import (
	"context"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/ports"
	"deliveryescrow/internal/pkg/errs"
)

const reasonOnlyOwner = "caller is not the owner"

// ChangeCommissionRateCommandHandler handles the business logic for
// commission rate changes. Only the configured owner account may change
// the rate.
type ChangeCommissionRateCommandHandler struct {
	uowFactory PolicyUoWFactory
	publisher  ports.NotificationPublisher
	owner      kernel.Account
}

// NewChangeCommissionRateCommandHandler creates a handler for rate changes.
func NewChangeCommissionRateCommandHandler(
	uowFactory PolicyUoWFactory,
	publisher ports.NotificationPublisher,
	owner kernel.Account,
) ChangeCommissionRateCommandHandler {
	return ChangeCommissionRateCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		owner:      owner,
	}
}

// Handle processes the rate change command.
func (h ChangeCommissionRateCommandHandler) Handle(ctx context.Context, cmd ChangeCommissionRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.owner) {
		return errs.NewUnauthorizedError(reasonOnlyOwner)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PolicyRepository().SetRate(ctx, cmd.Rate()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort after commit; the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, delivery.RateChangedEvent{NewRate: cmd.Rate().Int()})

	return nil
}
