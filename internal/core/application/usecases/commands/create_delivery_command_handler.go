package commands

import (
	"context"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Derives the delivery hash, snapshots the current commission rate onto the new
// record, registers it in Pending state, and writes the sender and receiver
// contact records, all within one transaction.
type CreateDeliveryCommandHandler struct {
	uowFactory RegistryUoWFactory
	publisher  ports.NotificationPublisher
	clock      Clock
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(
	uowFactory RegistryUoWFactory,
	publisher ports.NotificationPublisher,
	clock Clock,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the delivery creation command and returns the derived
// identifier. The commission rate read inside the transaction becomes the
// delivery's immutable snapshot; a concurrent owner rate change lands either
// wholly before or wholly after this creation, never halfway.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (kernel.DeliveryHash, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.DeliveryHash{}, err
	}

	now := h.clock()
	hash := kernel.DeriveDeliveryHash(
		cmd.Sender(), cmd.Receiver(), cmd.FromAddress(), cmd.ToAddress(),
		cmd.Reward(), cmd.CautionAmount(), cmd.Deadline(),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.DeliveryHash{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rate, err := uow.PolicyRepository().Rate(ctx)
	if err != nil {
		return kernel.DeliveryHash{}, err
	}

	aggregate, err := delivery.NewDelivery(
		hash, cmd.Sender(), cmd.Receiver(), cmd.FromAddress(), cmd.ToAddress(),
		cmd.Reward(), cmd.CautionAmount(), cmd.Deadline(), rate, now,
	)
	if err != nil {
		return kernel.DeliveryHash{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return kernel.DeliveryHash{}, err
	}

	contacts := uow.ContactRepository()
	if err = contacts.Upsert(ctx, cmd.Sender(), cmd.SenderContact()); err != nil {
		return kernel.DeliveryHash{}, err
	}
	if err = contacts.Upsert(ctx, cmd.Receiver(), cmd.ReceiverContact()); err != nil {
		return kernel.DeliveryHash{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.DeliveryHash{}, err
	}

	// Best effort after commit; the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, delivery.CreatedEvent{Hash: hash.String()})

	return hash, nil
}
