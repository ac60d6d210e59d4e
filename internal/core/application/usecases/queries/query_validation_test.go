package queries_test

import (
	"testing"

	"deliveryescrow/internal/core/application/usecases/queries"
	"deliveryescrow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func someHash(t *testing.T) kernel.DeliveryHash {
	t.Helper()
	b := make([]byte, 32)
	b[0] = 0xbe
	b[31] = 0xef
	hash, err := kernel.DeliveryHashFromBytes(b)
	require.NoError(t, err)
	return hash
}

func TestQueryConstructors_Validate(t *testing.T) {
	t.Run("get delivery", func(t *testing.T) {
		q, err := queries.NewGetDeliveryQuery(someHash(t))
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetDeliveryQuery(kernel.DeliveryHash{})
		require.Error(t, err)

		var zero queries.GetDeliveryQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetDeliveryQueryIsNotConstructed)
	})

	t.Run("does delivery exist", func(t *testing.T) {
		q, err := queries.NewDoesDeliveryExistQuery(someHash(t))
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		var zero queries.DoesDeliveryExistQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrDoesDeliveryExistQueryIsNotConstructed)
	})

	t.Run("delivery count", func(t *testing.T) {
		require.NoError(t, queries.NewGetDeliveryCountQuery().Validate())

		var zero queries.GetDeliveryCountQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetDeliveryCountQueryIsNotConstructed)
	})

	t.Run("delivery hash at", func(t *testing.T) {
		q, err := queries.NewGetDeliveryHashAtQuery(0)
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetDeliveryHashAtQuery(-1)
		require.Error(t, err)
	})

	t.Run("get user", func(t *testing.T) {
		q, err := queries.NewGetUserQuery(kernel.NewAccount())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetUserQuery(kernel.Account{})
		require.Error(t, err)
	})

	t.Run("commission rate", func(t *testing.T) {
		require.NoError(t, queries.NewGetCommissionRateQuery().Validate())

		q, err := queries.NewGetCommissionRateForDeliveryQuery(someHash(t))
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("balance", func(t *testing.T) {
		q, err := queries.NewGetBalanceQuery(kernel.NewAccount())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetBalanceQuery(kernel.Account{})
		require.Error(t, err)
	})
}
