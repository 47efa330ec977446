// Package payment implements the JazzCash mobile-wallet hosted checkout
// protocol: outbound parameter sets are signed with an HMAC-SHA256 secure
// hash over the sorted parameter values, and inbound callbacks are verified
// against the same scheme before anything else looks at them.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/hisabpro/backend/internal/domain/finance"
)

const (
	fieldSecureHash      = "pp_SecureHash"
	fieldTxnRefNo        = "pp_TxnRefNo"
	fieldResponseCode    = "pp_ResponseCode"
	fieldResponseMessage = "pp_ResponseMessage"

	// responseCodeSuccess is the gateway's code for a completed wallet debit
	responseCodeSuccess = "000"

	// txnDateTimeLayout is the gateway's yyyyMMddHHmmss timestamp format
	txnDateTimeLayout = "20060102150405"
)

// Config carries the merchant credentials and endpoints for the gateway
type Config struct {
	MerchantID       string
	MerchantPassword string
	IntegritySalt    string
	ActionURL        string
	ReturnURL        string
	Currency         string
	CheckoutExpiry   time.Duration
}

// JazzCashGateway implements PaymentGateway against the JazzCash
// hosted-checkout API.
type JazzCashGateway struct {
	cfg Config
}

// NewJazzCashGateway creates a new JazzCashGateway
func NewJazzCashGateway(cfg Config) *JazzCashGateway {
	if cfg.Currency == "" {
		cfg.Currency = "PKR"
	}
	if cfg.CheckoutExpiry <= 0 {
		cfg.CheckoutExpiry = time.Hour
	}
	return &JazzCashGateway{cfg: cfg}
}

// BuildCheckout assembles the full pp_* parameter set for a hosted
// checkout and signs it.
func (g *JazzCashGateway) BuildCheckout(req finance.CheckoutRequest) (*finance.CheckoutForm, error) {
	if req.TransactionRef == "" {
		return nil, finance.ErrGatewayMissingField
	}

	issuedAt := req.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	params := map[string]string{
		"pp_Version":            "2.0",
		"pp_TxnType":            "MWALLET",
		"pp_Language":           "EN",
		"pp_MerchantID":         g.cfg.MerchantID,
		"pp_SubMerchantID":      "",
		"pp_Password":           g.cfg.MerchantPassword,
		"pp_BankID":             "TBANK",
		"pp_ProductID":          "RETAIL",
		"pp_TxnRefNo":           req.TransactionRef,
		"pp_Amount":             req.Amount.StringFixed(2),
		"pp_TxnCurrency":        g.cfg.Currency,
		"pp_TxnDateTime":        issuedAt.Format(txnDateTimeLayout),
		"pp_BillReference":      "billRef",
		"pp_Description":        req.Description,
		"pp_TxnExpiryDateTime":  issuedAt.Add(g.cfg.CheckoutExpiry).Format(txnDateTimeLayout),
		"pp_ReturnURL":          g.cfg.ReturnURL,
		"pp_mpf_1":              "1",
		"pp_mpf_2":              "2",
		"pp_mpf_3":              "3",
		"pp_mpf_4":              "4",
		"pp_mpf_5":              "5",
	}
	params[fieldSecureHash] = g.SignParams(params)

	return &finance.CheckoutForm{
		ActionURL: g.cfg.ActionURL,
		Params:    params,
	}, nil
}

// VerifyCallback recomputes the secure hash over the posted fields and
// compares it with the one the gateway sent. Extraction of the business
// fields only happens after the signature checks out.
func (g *JazzCashGateway) VerifyCallback(params map[string]string) (*finance.CallbackResult, error) {
	received, ok := params[fieldSecureHash]
	if !ok || received == "" {
		return nil, finance.ErrGatewayInvalidCallback
	}

	expected := g.SignParams(params)
	if !hmac.Equal([]byte(strings.ToUpper(received)), []byte(expected)) {
		return nil, finance.ErrGatewayInvalidCallback
	}

	txnRef := params[fieldTxnRefNo]
	code := params[fieldResponseCode]
	if txnRef == "" || code == "" {
		return nil, finance.ErrGatewayMissingField
	}

	return &finance.CallbackResult{
		TransactionRef:  txnRef,
		ResponseCode:    code,
		ResponseMessage: params[fieldResponseMessage],
		Succeeded:       code == responseCodeSuccess,
	}, nil
}

// SignParams implements the gateway's signing scheme: parameters are
// sorted by key, the secure hash field and empty values are dropped, the
// remaining values (not keys) are joined onto the integrity salt with
// "&", and the string is HMAC-SHA256'd with the salt as key. The gateway
// compares hex digests uppercased.
func (g *JazzCashGateway) SignParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == fieldSecureHash || params[k] == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(g.cfg.IntegritySalt)
	for _, k := range keys {
		sb.WriteString("&")
		sb.WriteString(params[k])
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.IntegritySalt))
	mac.Write([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

var _ finance.PaymentGateway = (*JazzCashGateway)(nil)
