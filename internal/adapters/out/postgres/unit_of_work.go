// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work brackets one lifecycle transition together with its
// escrow fund movements in a single database transaction, so a delivery can
// never change state without the matching transfers and vice versa.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call produces a fresh instance with its own transaction state,
// which is what keeps concurrent commands isolated from each other.
package postgres

import (
	"context"

	"deliveryescrow/internal/adapters/out/postgres/contactrepo"
	"deliveryescrow/internal/adapters/out/postgres/deliveryrepo"
	"deliveryescrow/internal/adapters/out/postgres/ledgerrepo"
	"deliveryescrow/internal/adapters/out/postgres/policyrepo"
	"deliveryescrow/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the delivery
// registry, the contact directory, the escrow ledger, and the commission
// policy. Repositories obtained from it are bound to the active transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an instance
// with an active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which is
// what the deferred rollback after a successful commit runs into; callers
// ignore that result.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// DeliveryRepository returns the delivery registry bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn())
}

// ContactRepository returns the contact directory bound to the current transaction.
func (uow *GormUnitOfWork) ContactRepository() ports.ContactRepository {
	return contactrepo.NewGormContactRepository(uow.conn())
}

// LedgerRepository returns the escrow ledger bound to the current transaction.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

// PolicyRepository returns the commission policy store bound to the current transaction.
func (uow *GormUnitOfWork) PolicyRepository() ports.PolicyRepository {
	return policyrepo.NewGormPolicyRepository(uow.conn())
}
