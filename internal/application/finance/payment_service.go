package finance

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/finance"
	"github.com/hisabpro/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const checkoutDescription = "Shop Fees"

// PaymentService brokers the one-time unlock payment through the gateway.
// Initiate creates a pending payment and a signed checkout form; the
// gateway later reports the outcome to HandleCallback.
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	txScope     TransactionScope
	gateway     finance.PaymentGateway
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	txScope TransactionScope,
	gateway finance.PaymentGateway,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		txScope:     txScope,
		gateway:     gateway,
		logger:      logger,
	}
}

// Initiate creates a pending payment and returns the signed checkout
// form. The transaction reference is unique per attempt; an account can
// hold many pending payments, only a successful callback marks it paid.
func (s *PaymentService) Initiate(ctx context.Context, accountID uuid.UUID, req InitiatePaymentRequest) (*InitiatePaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount must be positive")
	}

	issuedAt := time.Now().UTC()
	txnRef, err := newTransactionRef(issuedAt)
	if err != nil {
		return nil, err
	}

	payment, err := finance.NewPayment(accountID, txnRef, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		s.logger.Error("Failed to create payment", zap.Error(err))
		return nil, err
	}

	form, err := s.gateway.BuildCheckout(finance.CheckoutRequest{
		TransactionRef: txnRef,
		Amount:         req.Amount,
		Description:    checkoutDescription,
		IssuedAt:       issuedAt,
	})
	if err != nil {
		s.logger.Error("Failed to build checkout form", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment initiated",
		zap.String("account_id", accountID.String()),
		zap.String("transaction_ref", txnRef))

	return &InitiatePaymentResponse{
		TransactionRef: txnRef,
		ActionURL:      form.ActionURL,
		Params:         form.Params,
	}, nil
}

// HandleCallback processes a gateway callback. The signature is verified
// before anything is read from the payload or touched in the store. A
// verified callback locks the payment row, so concurrent deliveries for
// the same reference serialize; re-delivery for a terminal payment is a
// no-op. A successful outcome marks the payment and the owning account
// paid in the same transaction.
func (s *PaymentService) HandleCallback(ctx context.Context, params map[string]string) (*CallbackOutcome, error) {
	result, err := s.gateway.VerifyCallback(params)
	if err != nil {
		if errors.Is(err, finance.ErrGatewayMissingField) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Callback is missing required fields")
		}
		s.logger.Warn("Rejected callback with invalid signature")
		return nil, shared.ErrSignatureInvalid
	}

	outcome := &CallbackOutcome{TransactionRef: result.TransactionRef}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.PaymentRepo().FindByTransactionRefForUpdate(ctx, result.TransactionRef)
		if err != nil {
			return err
		}

		if payment.Status.IsTerminal() {
			outcome.Status = payment.Status
			outcome.AlreadyProcessed = true
			return nil
		}

		if result.Succeeded {
			if err := payment.MarkSuccess(); err != nil {
				return err
			}
			account, err := repos.AccountRepo().FindByID(ctx, payment.AccountID)
			if err != nil {
				return err
			}
			account.MarkPaid()
			if err := repos.AccountRepo().Update(ctx, account); err != nil {
				return err
			}
		} else {
			if err := payment.MarkFailed(); err != nil {
				return err
			}
		}

		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}
		outcome.Status = payment.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment callback processed",
		zap.String("transaction_ref", outcome.TransactionRef),
		zap.String("status", string(outcome.Status)),
		zap.Bool("already_processed", outcome.AlreadyProcessed),
		zap.String("response_code", result.ResponseCode))

	return outcome, nil
}

// newTransactionRef builds a gateway transaction reference: T, the
// timestamp as yyyyMMddHHmmss, and a random nonce so references issued
// in the same second never collide.
func newTransactionRef(issuedAt time.Time) (string, error) {
	nonce := make([]byte, 6)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate transaction nonce: %w", err)
	}
	return fmt.Sprintf("T%s%s", issuedAt.Format("20060102150405"), strings.ToUpper(hex.EncodeToString(nonce))), nil
}
