package commands_test

import (
	"context"
	"time"

	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"
	"deliveryescrow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, hash kernel.DeliveryHash) (*delivery.Delivery, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) Exists(ctx context.Context, hash kernel.DeliveryHash) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}
func (m *MockDeliveryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockDeliveryRepository) HashAt(ctx context.Context, index int64) (kernel.DeliveryHash, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(kernel.DeliveryHash), args.Error(1)
}
func (m *MockDeliveryRepository) GetAllStartedPastDeadline(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Upsert(ctx context.Context, account kernel.Account, contact party.Contact) error {
	args := m.Called(ctx, account, contact)
	return args.Error(0)
}
func (m *MockContactRepository) Get(ctx context.Context, account kernel.Account) (party.Contact, bool, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(party.Contact), args.Bool(1), args.Error(2)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Balance(ctx context.Context, account kernel.Account) (kernel.Money, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(kernel.Money), args.Error(1)
}
func (m *MockLedgerRepository) Credit(ctx context.Context, account kernel.Account, amount kernel.Money) error {
	args := m.Called(ctx, account, amount)
	return args.Error(0)
}
func (m *MockLedgerRepository) Transfer(ctx context.Context, from, to kernel.Account, amount kernel.Money) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

type MockPolicyRepository struct{ mock.Mock }

func (m *MockPolicyRepository) Rate(ctx context.Context) (commission.Rate, error) {
	args := m.Called(ctx)
	return args.Get(0).(commission.Rate), args.Error(1)
}
func (m *MockPolicyRepository) SetRate(ctx context.Context, rate commission.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, n delivery.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRegistryUoW struct{ txMock }

func (m *MockRegistryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockRegistryUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}
func (m *MockRegistryUoW) PolicyRepository() ports.PolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.PolicyRepository)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockEscrowUoW struct{ txMock }

func (m *MockEscrowUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockEscrowUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}
func (m *MockEscrowUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockEscrowUoWFactory struct{ mock.Mock }

func (m *MockEscrowUoWFactory) Create() commands.EscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.EscrowUoW)
}

type MockSettlementUoW struct{ txMock }

func (m *MockSettlementUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockSettlementUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockPolicyUoW struct{ txMock }

func (m *MockPolicyUoW) PolicyRepository() ports.PolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.PolicyRepository)
}

type MockPolicyUoWFactory struct{ mock.Mock }

func (m *MockPolicyUoWFactory) Create() commands.PolicyUoW {
	args := m.Called()
	return args.Get(0).(commands.PolicyUoW)
}

type MockWalletUoW struct{ txMock }

func (m *MockWalletUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockWalletUoWFactory struct{ mock.Mock }

func (m *MockWalletUoWFactory) Create() commands.WalletUoW {
	args := m.Called()
	return args.Get(0).(commands.WalletUoW)
}

// fixedClock returns a Clock pinned to the given instant.
func fixedClock(now time.Time) commands.Clock {
	return func() time.Time { return now }
}
