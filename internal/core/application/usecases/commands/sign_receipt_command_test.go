package commands_test

import (
	"testing"

	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewSignReceiptCommand_Success(t *testing.T) {
	hash := someHash(t)
	caller := kernel.NewAccount()

	cmd, err := commands.NewSignReceiptCommand(hash, caller)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.True(t, cmd.Hash().IsEqual(hash))
	require.True(t, cmd.Caller().IsEqual(caller))
}

func TestNewSignReceiptCommand_InvalidInputs(t *testing.T) {
	_, err := commands.NewSignReceiptCommand(kernel.DeliveryHash{}, kernel.NewAccount())
	require.Error(t, err)

	_, err = commands.NewSignReceiptCommand(someHash(t), kernel.Account{})
	require.Error(t, err)
}

func TestSignReceiptCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.SignReceiptCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSignReceiptCommandIsNotConstructed)
}
