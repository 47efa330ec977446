package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products.
// All lookups are scoped by owning account; a product owned by another
// account is indistinguishable from an absent one.
type ProductRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate loads the product row with a row-level write lock.
	// Must be called inside a transaction.
	FindByIDForUpdate(ctx context.Context, accountID, id uuid.UUID) (*Product, error)
	FindByIDs(ctx context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]Product, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Save(ctx context.Context, product *Product) error
	DeleteForAccount(ctx context.Context, accountID, id uuid.UUID) error
}
