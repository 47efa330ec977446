package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/report"
	"go.uber.org/zap"
)

const defaultReportCurrency = "PKR"

// ReportService serves read-side profit and loss views over sale history
type ReportService struct {
	reportRepo report.ReportRepository
	currency   string
	logger     *zap.Logger
}

// NewReportService creates a new ReportService. All monetary figures are
// reported in the given currency; the ledger itself is single-currency.
func NewReportService(reportRepo report.ReportRepository, currency string, logger *zap.Logger) *ReportService {
	if currency == "" {
		currency = defaultReportCurrency
	}
	return &ReportService{
		reportRepo: reportRepo,
		currency:   currency,
		logger:     logger,
	}
}

// ProfitLoss returns the account's aggregate revenue, cost, and profit
func (s *ReportService) ProfitLoss(ctx context.Context, accountID uuid.UUID) (*report.ProfitLossReport, error) {
	result, err := s.reportRepo.ProfitLoss(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to build profit and loss report", zap.Error(err))
		return nil, err
	}
	result.Currency = s.currency
	return result, nil
}

// DailyProfitLoss returns per-day profit and loss slices, oldest first.
// Summing the slices reproduces the aggregate report.
func (s *ReportService) DailyProfitLoss(ctx context.Context, accountID uuid.UUID) ([]report.DailyProfitLoss, error) {
	days, err := s.reportRepo.DailyProfitLoss(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to build daily profit and loss report", zap.Error(err))
		return nil, err
	}
	return days, nil
}
