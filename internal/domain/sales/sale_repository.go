package sales

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for sale records.
// Sales are append-only; there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]Sale, error)
}
