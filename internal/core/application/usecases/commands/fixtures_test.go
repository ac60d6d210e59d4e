package commands_test

import (
	"testing"
	"time"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

// escrowFixture wires a delivery with known participants and a settlement
// service over fixed custody and owner accounts. Reward 100 and rate 10 give
// a commission of 10 and a courier payout of 90.
type escrowFixture struct {
	sender   kernel.Account
	receiver kernel.Account
	courier  kernel.Account
	created  time.Time
	aggr     *delivery.Delivery
	settler  services.EscrowSettler
}

const (
	fixtureReward  = 100
	fixtureCaution = 10
)

// someHash builds an arbitrary valid delivery identifier for command tests
// that never dereference it.
func someHash(t *testing.T) kernel.DeliveryHash {
	t.Helper()
	b := make([]byte, 32)
	b[0] = 0xde
	b[31] = 0xad
	hash, err := kernel.DeliveryHashFromBytes(b)
	require.NoError(t, err)
	return hash
}

func newEscrowFixture(t *testing.T) *escrowFixture {
	t.Helper()

	f := &escrowFixture{
		sender:   kernel.NewAccount(),
		receiver: kernel.NewAccount(),
		courier:  kernel.NewAccount(),
		created:  time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	hash := kernel.DeriveDeliveryHash(
		f.sender, f.receiver, "1 Main St", "2 Side St",
		kernel.NewMoney(fixtureReward), kernel.NewMoney(fixtureCaution),
		f.created.Add(48*time.Hour),
	)

	var err error
	f.aggr, err = delivery.NewDelivery(
		hash, f.sender, f.receiver, "1 Main St", "2 Side St",
		kernel.NewMoney(fixtureReward), kernel.NewMoney(fixtureCaution),
		f.created.Add(48*time.Hour), commission.DefaultRate, f.created,
	)
	require.NoError(t, err)

	f.settler, err = services.NewEscrowSettler(kernel.NewAccount(), kernel.NewAccount())
	require.NoError(t, err)

	return f
}

// applied advances the fixture delivery to AwaitingPickup.
func (f *escrowFixture) applied(t *testing.T) *escrowFixture {
	t.Helper()
	require.NoError(t, f.aggr.Apply(f.courier, kernel.NewMoney(fixtureCaution)))
	return f
}

// started advances the fixture delivery to Started.
func (f *escrowFixture) started(t *testing.T) *escrowFixture {
	t.Helper()
	f.applied(t)
	require.NoError(t, f.aggr.Start(f.sender, kernel.NewMoney(fixtureReward), f.created.Add(time.Hour)))
	return f
}
