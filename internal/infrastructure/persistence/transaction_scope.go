package persistence

import (
	"context"
	"time"

	appfinance "github.com/hisabpro/backend/internal/application/finance"
	appsales "github.com/hisabpro/backend/internal/application/sales"
	"github.com/hisabpro/backend/internal/domain/catalog"
	domainfinance "github.com/hisabpro/backend/internal/domain/finance"
	"github.com/hisabpro/backend/internal/domain/identity"
	domainsales "github.com/hisabpro/backend/internal/domain/sales"
	"github.com/hisabpro/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// maxTxAttempts bounds retries of a transaction aborted by a transient
// failure such as a deadlock or serialization conflict.
const maxTxAttempts = 3

// executeWithRetry runs fn inside a fresh transaction, retrying when the
// whole transaction aborts with a transient postgres error. Exhausted
// retries surface as ErrStoreUnavailable so callers can map them to a
// retryable response.
func executeWithRetry(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
			}
		}
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return shared.ErrStoreUnavailable
}

// GormSaleTransactionScope implements the sale TransactionScope using
// GORM transactions.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return executeWithRetry(ctx, s.db, func(tx *gorm.DB) error {
		return fn(&gormSaleTxRepositories{tx: tx})
	})
}

type gormSaleTxRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormSaleTxRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormSaleTxRepositories) SaleRepo() domainsales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// GormPaymentTransactionScope implements the payment TransactionScope
// using GORM transactions.
type GormPaymentTransactionScope struct {
	db *gorm.DB
}

// NewGormPaymentTransactionScope creates a new GormPaymentTransactionScope
func NewGormPaymentTransactionScope(db *gorm.DB) *GormPaymentTransactionScope {
	return &GormPaymentTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPaymentTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return executeWithRetry(ctx, s.db, func(tx *gorm.DB) error {
		return fn(&gormPaymentTxRepositories{tx: tx})
	})
}

type gormPaymentTxRepositories struct {
	tx *gorm.DB
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormPaymentTxRepositories) PaymentRepo() domainfinance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// AccountRepo returns the account repository scoped to the current transaction
func (r *gormPaymentTxRepositories) AccountRepo() identity.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

// Ensure the scopes implement their application interfaces
var (
	_ appsales.TransactionScope   = (*GormSaleTransactionScope)(nil)
	_ appfinance.TransactionScope = (*GormPaymentTransactionScope)(nil)

	_ appsales.TransactionalRepositories   = (*gormSaleTxRepositories)(nil)
	_ appfinance.TransactionalRepositories = (*gormPaymentTxRepositories)(nil)
)
