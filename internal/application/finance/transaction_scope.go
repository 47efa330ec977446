package finance

import (
	"context"

	domainfinance "github.com/hisabpro/backend/internal/domain/finance"
	"github.com/hisabpro/backend/internal/domain/identity"
)

// TransactionalRepositories provides access to the repositories that
// participate in applying a payment outcome. All returned repositories
// operate within the same database transaction.
type TransactionalRepositories interface {
	PaymentRepo() domainfinance.PaymentRepository
	AccountRepo() identity.AccountRepository
}

// TransactionScope executes a function within a database transaction,
// giving it transaction-scoped repositories. If fn returns an error the
// transaction is rolled back; otherwise it is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
