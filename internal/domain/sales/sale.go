package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/catalog"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed sale. TotalAmount snapshots
// selling_price * quantity at sale time, so later price edits or product
// deletion never change historical revenue. Cost is intentionally not
// snapshotted; profit reports join against the product's current cost
// price and treat a deleted product as zero cost.
type Sale struct {
	shared.BaseEntity
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantitySold int             `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SoldAt       time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale records a sale of the given quantity against a product. The
// caller must already hold the product row lock and have deducted stock.
func NewSale(accountID uuid.UUID, product *catalog.Product, quantity int) (*Sale, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}

	return &Sale{
		BaseEntity:   shared.NewBaseEntity(),
		AccountID:    accountID,
		ProductID:    product.ID,
		QuantitySold: quantity,
		TotalAmount:  product.SaleAmount(quantity),
		SoldAt:       time.Now().UTC(),
	}, nil
}
