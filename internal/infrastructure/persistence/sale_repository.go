package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create persists a new sale record
func (r *GormSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// FindAllForAccount lists an account's sales, newest first
func (r *GormSaleRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]sales.Sale, error) {
	var records []sales.Sale
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("sold_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
