package commands

import (
	"context"
)

// DepositFundsCommandHandler handles the business logic for ledger deposits.
type DepositFundsCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewDepositFundsCommandHandler creates a handler for ledger deposits.
func NewDepositFundsCommandHandler(uowFactory WalletUoWFactory) DepositFundsCommandHandler {
	return DepositFundsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deposit command.
func (h DepositFundsCommandHandler) Handle(ctx context.Context, cmd DepositFundsCommand) error {
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

	if err := uow.LedgerRepository().Credit(ctx, cmd.Account(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
