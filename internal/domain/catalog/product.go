package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents an item in a merchant's catalog. Stock is tracked
// directly on the product row; sale application decrements it under a
// row-level lock so concurrent sales cannot overdraw it.
type Product struct {
	shared.BaseEntity
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	Version       int             `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product owned by the given account
func NewProduct(accountID uuid.UUID, name string, costPrice, sellingPrice decimal.Decimal, stockQuantity int) (*Product, error) {
	if err := validate(name, costPrice, sellingPrice, stockQuantity); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		AccountID:     accountID,
		Name:          strings.TrimSpace(name),
		CostPrice:     costPrice,
		SellingPrice:  sellingPrice,
		StockQuantity: stockQuantity,
		Version:       1,
	}, nil
}

// Update overwrites name, prices, and stock in one operation
func (p *Product) Update(name string, costPrice, sellingPrice decimal.Decimal, stockQuantity int) error {
	if err := validate(name, costPrice, sellingPrice, stockQuantity); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.CostPrice = costPrice
	p.SellingPrice = sellingPrice
	p.StockQuantity = stockQuantity
	p.UpdatedAt = time.Now()
	p.Version++
	return nil
}

// DeductStock decrements stock for a sale. The quantity check and the
// decrement must run while the product row is locked by the caller's
// transaction, otherwise two sales can both pass the check on a stale read.
func (p *Product) DeductStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	if quantity > p.StockQuantity {
		return shared.ErrInsufficientStock
	}

	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now()
	p.Version++
	return nil
}

// SaleAmount returns the revenue for selling the given quantity at the
// current selling price.
func (p *Product) SaleAmount(quantity int) decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func validate(name string, costPrice, sellingPrice decimal.Decimal, stockQuantity int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cost price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Selling price cannot be negative")
	}
	if stockQuantity < 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Stock quantity cannot be negative")
	}
	return nil
}
