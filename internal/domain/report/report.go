package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitLossReport summarizes an account's trading result. Revenue is the
// sum of recorded sale amounts; cost is quantity sold times the product's
// current cost price. Sales whose product has since been deleted
// contribute revenue but no cost.
type ProfitLossReport struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
	Currency    string          `json:"currency"`
	SalesCount  int64           `json:"sales_count"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// NewProfitLossReport builds the aggregate report; profit is always
// revenue minus cost, never stored independently.
func NewProfitLossReport(accountID uuid.UUID, revenue, cost decimal.Decimal, salesCount int64, generatedAt time.Time) *ProfitLossReport {
	return &ProfitLossReport{
		AccountID:   accountID,
		Revenue:     revenue,
		Cost:        cost,
		Profit:      revenue.Sub(cost),
		SalesCount:  salesCount,
		GeneratedAt: generatedAt,
	}
}

// DailyProfitLoss is one day's slice of the profit and loss report
type DailyProfitLoss struct {
	Day     time.Time       `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// NewDailyProfitLoss builds one day's slice with the same profit rule as
// the aggregate report, so daily slices sum to the aggregate.
func NewDailyProfitLoss(day time.Time, revenue, cost decimal.Decimal) DailyProfitLoss {
	return DailyProfitLoss{
		Day:     day,
		Revenue: revenue,
		Cost:    cost,
		Profit:  revenue.Sub(cost),
	}
}

// ReportRepository defines read-side aggregation queries over sales
type ReportRepository interface {
	ProfitLoss(ctx context.Context, accountID uuid.UUID) (*ProfitLossReport, error)
	DailyProfitLoss(ctx context.Context, accountID uuid.UUID) ([]DailyProfitLoss, error)
}
