package finance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway errors
var (
	ErrGatewayInvalidCallback = errors.New("payment: invalid callback signature")
	ErrGatewayMissingField    = errors.New("payment: callback missing required field")
)

// CheckoutRequest carries everything the gateway needs to build a hosted
// checkout for a pending payment.
type CheckoutRequest struct {
	TransactionRef string
	Amount         decimal.Decimal
	Description    string
	IssuedAt       time.Time
}

// CheckoutForm is the signed parameter set the client posts to the
// gateway's hosted page.
type CheckoutForm struct {
	ActionURL string            `json:"action_url"`
	Params    map[string]string `json:"params"`
}

// CallbackResult is the validated, structured form of a raw gateway
// callback. Business logic only ever sees this type, never the raw
// string-keyed form fields.
type CallbackResult struct {
	TransactionRef  string
	ResponseCode    string
	ResponseMessage string
	Succeeded       bool
}

// PaymentGateway brokers payments through an external provider using a
// request-signing / callback-verification protocol.
type PaymentGateway interface {
	// BuildCheckout produces the signed outbound parameter set.
	BuildCheckout(req CheckoutRequest) (*CheckoutForm, error)
	// VerifyCallback authenticates the inbound parameter map against the
	// shared secret and extracts the structured result. It must reject an
	// unverifiable signature before any state is touched.
	VerifyCallback(params map[string]string) (*CallbackResult, error)
}
