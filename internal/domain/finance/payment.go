package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsTerminal reports whether the status permits no further transitions
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// Payment tracks a one-time entitlement payment brokered through the
// external gateway. TransactionRef is globally unique and serves as the
// idempotency key for callback processing: a payment transitions out of
// pending exactly once.
type Payment struct {
	shared.BaseEntity
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionRef string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status         PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a pending payment for the given account
func NewPayment(accountID uuid.UUID, transactionRef string, amount decimal.Decimal) (*Payment, error) {
	if transactionRef == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Transaction reference cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}

	return &Payment{
		BaseEntity:     shared.NewBaseEntity(),
		AccountID:      accountID,
		TransactionRef: transactionRef,
		Amount:         amount,
		Status:         PaymentStatusPending,
	}, nil
}

// MarkSuccess transitions pending -> success
func (p *Payment) MarkSuccess() error {
	return p.transition(PaymentStatusSuccess)
}

// MarkFailed transitions pending -> failed
func (p *Payment) MarkFailed() error {
	return p.transition(PaymentStatusFailed)
}

func (p *Payment) transition(to PaymentStatus) error {
	if p.Status.IsTerminal() {
		return shared.ErrInvalidState
	}
	p.Status = to
	p.UpdatedAt = time.Now()
	return nil
}
