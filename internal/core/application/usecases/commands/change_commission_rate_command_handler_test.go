package commands_test

import (
	"testing"

	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeCommissionRateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewAccount()
	rate, _ := commission.NewRate(25)
	cmd, err := commands.NewChangeCommissionRateCommand(owner, rate)
	require.NoError(t, err)

	policy := new(MockPolicyRepository)
	uow := new(MockPolicyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PolicyRepository").Return(policy).Once(),
		policy.On("SetRate", ctx, rate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPolicyUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, delivery.RateChangedEvent{NewRate: 25}).Return(nil).Once()

	h := commands.NewChangeCommissionRateCommandHandler(factory, publisher, owner)
	require.NoError(t, h.Handle(ctx, cmd))
	policy.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeCommissionRateCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewAccount()
	rate, _ := commission.NewRate(25)
	cmd, err := commands.NewChangeCommissionRateCommand(kernel.NewAccount(), rate)
	require.NoError(t, err)

	factory := new(MockPolicyUoWFactory)
	h := commands.NewChangeCommissionRateCommandHandler(factory, new(MockPublisher), owner)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeCommissionRateCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockPolicyUoWFactory)
	h := commands.NewChangeCommissionRateCommandHandler(factory, new(MockPublisher), kernel.NewAccount())
	require.Error(t, h.Handle(ctx, commands.ChangeCommissionRateCommand{}))
}
