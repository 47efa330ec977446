package persistence

import (
	"context"
	"errors"

	"github.com/hisabpro/backend/internal/domain/finance"
	"github.com/hisabpro/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create persists a new payment
func (r *GormPaymentRepository) Create(ctx context.Context, payment *finance.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateTxnRef
		}
		return err
	}
	return nil
}

// FindByTransactionRefForUpdate finds a payment by its transaction reference,
// taking a row-level write lock for the duration of the surrounding transaction
func (r *GormPaymentRepository) FindByTransactionRefForUpdate(ctx context.Context, transactionRef string) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("transaction_ref = ?", transactionRef).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Save persists changes to an existing payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
