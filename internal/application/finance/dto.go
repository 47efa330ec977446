package finance

import (
	"github.com/hisabpro/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// InitiatePaymentRequest represents a request to start a checkout
type InitiatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// InitiatePaymentResponse carries the signed checkout form the client
// posts to the gateway's hosted page.
type InitiatePaymentResponse struct {
	TransactionRef string            `json:"transaction_ref"`
	ActionURL      string            `json:"action_url"`
	Params         map[string]string `json:"params"`
}

// CallbackAck is the acknowledgement body returned to the gateway
type CallbackAck struct {
	Status string `json:"status"`
}

// CallbackOutcome describes what processing a callback did
type CallbackOutcome struct {
	TransactionRef string
	Status         finance.PaymentStatus
	// AlreadyProcessed is true when the payment was terminal before this
	// delivery; nothing was re-applied.
	AlreadyProcessed bool
}
