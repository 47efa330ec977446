package dto

import "net/http"

// Error codes shared between domain errors and HTTP responses
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"

	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"

	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidState  = "INVALID_STATE"

	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeEntitlementRequired = "ENTITLEMENT_REQUIRED"
	ErrCodePaymentNotFound     = "PAYMENT_NOT_FOUND"
	ErrCodeDuplicateTxnRef     = "DUPLICATE_TRANSACTION_REF"
	ErrCodeSignatureInvalid    = "SIGNATURE_INVALID"
	ErrCodeStoreUnavailable    = "STORE_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusConflict,

	ErrCodeInvalidCredentials: http.StatusUnauthorized,

	ErrCodeInsufficientStock:   http.StatusBadRequest,
	ErrCodeEntitlementRequired: http.StatusForbidden,
	ErrCodePaymentNotFound:     http.StatusNotFound,
	ErrCodeDuplicateTxnRef:     http.StatusConflict,
	ErrCodeSignatureInvalid:    http.StatusBadRequest,
	ErrCodeStoreUnavailable:    http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
