package sales

import (
	"context"

	"github.com/hisabpro/backend/internal/domain/catalog"
	domainsales "github.com/hisabpro/backend/internal/domain/sales"
)

// TransactionalRepositories provides access to the repositories that
// participate in a sale transaction. All returned repositories operate
// within the same database transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	SaleRepo() domainsales.SaleRepository
}

// TransactionScope executes a function within a database transaction,
// giving it transaction-scoped repositories. If fn returns an error the
// transaction is rolled back; otherwise it is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
