package finance

import "context"

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	// FindByTransactionRefForUpdate loads the payment row with a row-level
	// write lock so concurrent callback deliveries for the same reference
	// serialize. Must be called inside a transaction.
	FindByTransactionRefForUpdate(ctx context.Context, transactionRef string) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
