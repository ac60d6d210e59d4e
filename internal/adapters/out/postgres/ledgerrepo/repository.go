package ledgerrepo

import (
	"context"
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerRepository implements LedgerRepository using GORM.
//
// The debit side of Transfer is a single conditional UPDATE guarded by the
// current balance, so two transfers racing over the same account inside
// concurrent transactions serialize on the row lock and the later one either
// sees the reduced balance or fails.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Balance returns the current balance of an account. An account with no row
// has a zero balance.
func (r *GormLedgerRepository) Balance(ctx context.Context, account kernel.Account) (kernel.Money, error) {
	if err := account.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var dto BalanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "account = ?", account.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Zero(), nil
		}
		return kernel.Money{}, err
	}

	return kernel.NewMoney(dto.Balance), nil
}

// Credit adds funds to an account, creating its row on first use.
func (r *GormLedgerRepository) Credit(ctx context.Context, account kernel.Account, amount kernel.Money) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := BalanceDTO{Account: account.Bytes(), Balance: amount.Units()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance": gorm.Expr("ledger_balances.balance + ?", amount.Units()),
			}),
		}).
		Create(&dto).Error
}

// Transfer atomically debits from and credits to. A zero amount is a no-op so
// zero-reward and zero-caution deliveries settle without touching the ledger.
func (r *GormLedgerRepository) Transfer(ctx context.Context, from, to kernel.Account, amount kernel.Money) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	if amount.IsZero() {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&BalanceDTO{}).
		Where("account = ? AND balance >= ?", from.Bytes(), amount.Units()).
		Update("balance", gorm.Expr("balance - ?", amount.Units()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		available, err := r.Balance(ctx, from)
		if err != nil {
			return err
		}
		return errs.NewInsufficientFundsError(from.String(), amount.String(), available.String())
	}

	return r.Credit(ctx, to, amount)
}
