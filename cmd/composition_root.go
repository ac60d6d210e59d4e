package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "deliveryescrow/internal/adapters/in/http"
	"deliveryescrow/internal/adapters/out/postgres"
	"deliveryescrow/internal/adapters/out/postgres/deliveryrepo"
	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/application/usecases/queries"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/services"
	"deliveryescrow/internal/core/ports"
	"deliveryescrow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires every adapter and handler from configuration.
// Each Create method builds a fresh handler so nothing shares mutable state.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	settler    services.EscrowSettler
	owner      kernel.Account
	publisher  ports.NotificationPublisher
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	owner, err := kernel.AccountFromString(config.OwnerAccount)
	if err != nil {
		return nil, fmt.Errorf("owner account: %w", err)
	}

	custody, err := kernel.AccountFromString(config.CustodyAccount)
	if err != nil {
		return nil, fmt.Errorf("custody account: %w", err)
	}

	settler, err := services.NewEscrowSettler(custody, owner)
	if err != nil {
		return nil, fmt.Errorf("escrow settler: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		settler:    settler,
		owner:      owner,
		publisher:  publisher,
		clock:      time.Now,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateApplyToDeliveryCommandHandler() commands.ApplyToDeliveryCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyToDeliveryCommandHandler(f, c.settler)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.settlementUoWFactory(), c.settler, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateSignReceiptCommandHandler() commands.SignReceiptCommandHandler {
	return commands.NewSignReceiptCommandHandler(c.settlementUoWFactory(), c.settler, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateCheckOvertimeCommandHandler() commands.CheckOvertimeCommandHandler {
	return commands.NewCheckOvertimeCommandHandler(c.settlementUoWFactory(), c.settler, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateChangeCommissionRateCommandHandler() commands.ChangeCommissionRateCommandHandler {
	var f commands.PolicyUoWFactory = FuncPolicyUoWFactory(func() commands.PolicyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCommissionRateCommandHandler(f, c.publisher, c.owner)
}

func (c *CompositionRoot) CreateDepositFundsCommandHandler() commands.DepositFundsCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepositFundsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDoesDeliveryExistQueryHandler() queries.DoesDeliveryExistQueryHandler {
	return queries.NewDoesDeliveryExistQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryCountQueryHandler() queries.GetDeliveryCountQueryHandler {
	return queries.NewGetDeliveryCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryHashAtQueryHandler() queries.GetDeliveryHashAtQueryHandler {
	return queries.NewGetDeliveryHashAtQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommissionRateQueryHandler() queries.GetCommissionRateQueryHandler {
	return queries.NewGetCommissionRateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommissionRateForDeliveryQueryHandler() queries.GetCommissionRateForDeliveryQueryHandler {
	return queries.NewGetCommissionRateForDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateApplyToDeliveryCommandHandler(),
		c.CreateStartDeliveryCommandHandler(),
		c.CreateSignReceiptCommandHandler(),
		c.CreateCheckOvertimeCommandHandler(),
		c.CreateChangeCommissionRateCommandHandler(),
		c.CreateDepositFundsCommandHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateDoesDeliveryExistQueryHandler(),
		c.CreateGetDeliveryCountQueryHandler(),
		c.CreateGetDeliveryHashAtQueryHandler(),
		c.CreateGetUserQueryHandler(),
		c.CreateGetCommissionRateQueryHandler(),
		c.CreateGetCommissionRateForDeliveryQueryHandler(),
		c.CreateGetBalanceQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs. The deadline watch scans
// outside any command transaction, so it reads through a plain repository.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	scanner := deliveryrepo.NewGormDeliveryRepository(c.gormDB)
	return jobs.NewJobManager(scanner, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncPolicyUoWFactory func() commands.PolicyUoW

func (f FuncPolicyUoWFactory) Create() commands.PolicyUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}
