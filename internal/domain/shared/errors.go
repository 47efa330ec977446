package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrEntitlementRequired = NewDomainError("ENTITLEMENT_REQUIRED", "Payment required to access this feature")
	ErrPaymentNotFound     = NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
	ErrDuplicateTxnRef     = NewDomainError("DUPLICATE_TRANSACTION_REF", "Transaction reference already exists")
	ErrSignatureInvalid    = NewDomainError("SIGNATURE_INVALID", "Callback signature verification failed")
	ErrStoreUnavailable    = NewDomainError("STORE_UNAVAILABLE", "Store temporarily unavailable, retry later")
)
