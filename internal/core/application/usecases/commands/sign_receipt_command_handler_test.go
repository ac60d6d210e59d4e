package commands_test

import (
	"testing"
	"time"

	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t).started(t)
	cmd, err := commands.NewSignReceiptCommand(f.aggr.Hash(), f.receiver)
	require.NoError(t, err)

	now := f.created.Add(24 * time.Hour)

	// Reward 100 at rate 10: commission 10 to the owner, payout 90 to the
	// courier, plus the caution refund of 10.
	deliveries := new(MockDeliveryRepository)
	ledger := new(MockLedgerRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", mock.Anything, f.aggr.Hash()).Return(f.aggr, nil).Once(),
		uow.On("LedgerRepository").Return(ledger).Once(),
		ledger.On("Transfer", mock.Anything, f.settler.Custody(), f.settler.Owner(), kernel.NewMoney(10)).Return(nil).Once(),
		ledger.On("Transfer", mock.Anything, f.settler.Custody(), f.courier, kernel.NewMoney(90)).Return(nil).Once(),
		ledger.On("Transfer", mock.Anything, f.settler.Custody(), f.courier, kernel.NewMoney(fixtureCaution)).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Update", mock.Anything, f.aggr).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, delivery.EndedEvent{
		Hash:    f.aggr.Hash().String(),
		EndTime: now,
	}).Return(nil).Once()

	h := commands.NewSignReceiptCommandHandler(factory, f.settler, publisher, fixedClock(now))
	endTime, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, now, endTime)
	require.Equal(t, delivery.Ended, f.aggr.State())
	deliveries.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSignReceiptCommandHandler_Handle_NotReceiver(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t).started(t)
	cmd, err := commands.NewSignReceiptCommand(f.aggr.Hash(), f.sender)
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", mock.Anything, f.aggr.Hash()).Return(f.aggr, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignReceiptCommandHandler(factory, f.settler, new(MockPublisher), fixedClock(f.created))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, delivery.Started, f.aggr.State())
	uow.AssertExpectations(t)
}

func TestSignReceiptCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t).applied(t) // awaiting pickup, not started
	cmd, err := commands.NewSignReceiptCommand(f.aggr.Hash(), f.receiver)
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", mock.Anything, f.aggr.Hash()).Return(f.aggr, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignReceiptCommandHandler(factory, f.settler, new(MockPublisher), fixedClock(f.created))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}
