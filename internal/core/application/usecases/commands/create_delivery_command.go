package commands

import (
	"errors"
	"time"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"
	"deliveryescrow/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to register a new delivery.
// It carries everything that fixes the delivery's economics: the parties, the
// addresses, the reward, the required caution deposit, and the deadline.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(sender, senderContact, receiver, receiverContact,
//	    "1234 Main street", "6789 Nice street",
//	    kernel.NewMoney(1), kernel.NewMoney(10), time.Now().Add(48*time.Hour))
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	hash, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	sender          kernel.Account
	senderContact   party.Contact
	receiver        kernel.Account
	receiverContact party.Contact
	fromAddress     string
	toAddress       string
	reward          kernel.Money
	cautionAmount   kernel.Money
	deadline        time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates accounts and contacts; address and deadline rules are enforced by
// the aggregate so creation-time policy lives in one place.
func NewCreateDeliveryCommand(
	sender kernel.Account,
	senderContact party.Contact,
	receiver kernel.Account,
	receiverContact party.Contact,
	fromAddress string,
	toAddress string,
	reward kernel.Money,
	cautionAmount kernel.Money,
	deadline time.Time,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		fromAddress:   fromAddress,
		toAddress:     toAddress,
		reward:        reward,
		cautionAmount: cautionAmount,
		deadline:      deadline,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender, senderContact),
		cmd.setReceiver(receiver, receiverContact),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// Sender returns the creating account, which funds the reward later.
func (c CreateDeliveryCommand) Sender() kernel.Account { return c.sender }

// SenderContact returns the sender's directory record.
func (c CreateDeliveryCommand) SenderContact() party.Contact { return c.senderContact }

// Receiver returns the account whose signature will settle the delivery.
func (c CreateDeliveryCommand) Receiver() kernel.Account { return c.receiver }

// ReceiverContact returns the receiver's directory record.
func (c CreateDeliveryCommand) ReceiverContact() party.Contact { return c.receiverContact }

// FromAddress returns the pickup address.
func (c CreateDeliveryCommand) FromAddress() string { return c.fromAddress }

// ToAddress returns the destination address.
func (c CreateDeliveryCommand) ToAddress() string { return c.toAddress }

// Reward returns the reward amount.
func (c CreateDeliveryCommand) Reward() kernel.Money { return c.reward }

// CautionAmount returns the required security deposit.
func (c CreateDeliveryCommand) CautionAmount() kernel.Money { return c.cautionAmount }

// Deadline returns the delivery deadline.
func (c CreateDeliveryCommand) Deadline() time.Time { return c.deadline }

func (c *CreateDeliveryCommand) setSender(sender kernel.Account, contact party.Contact) error {
	if err := errors.Join(sender.Validate(), contact.Validate()); err != nil {
		return err
	}
	c.sender = sender
	c.senderContact = contact
	return nil
}

func (c *CreateDeliveryCommand) setReceiver(receiver kernel.Account, contact party.Contact) error {
	if err := errors.Join(receiver.Validate(), contact.Validate()); err != nil {
		return err
	}
	c.receiver = receiver
	c.receiverContact = contact
	return nil
}
