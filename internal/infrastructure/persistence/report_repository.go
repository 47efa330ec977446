package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

type profitLossRow struct {
	Revenue    decimal.Decimal
	Cost       decimal.Decimal
	SalesCount int64
}

// ProfitLoss aggregates an account's full profit and loss figures.
// Cost uses the product's current cost price; sales for deleted products
// carry zero cost.
func (r *GormReportRepository) ProfitLoss(ctx context.Context, accountID uuid.UUID) (*report.ProfitLossReport, error) {
	var row profitLossRow
	if err := r.db.WithContext(ctx).Table("sales s").
		Select(`COALESCE(SUM(s.total_amount), 0) AS revenue,
			COALESCE(SUM(s.quantity_sold * p.cost_price), 0) AS cost,
			COUNT(s.id) AS sales_count`).
		Joins("LEFT JOIN products p ON p.id = s.product_id").
		Where("s.account_id = ?", accountID).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return report.NewProfitLossReport(accountID, row.Revenue, row.Cost, row.SalesCount, time.Now().UTC()), nil
}

type dailyProfitLossRow struct {
	Day     time.Time
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// DailyProfitLoss aggregates an account's profit and loss per calendar day,
// oldest day first. Days without sales are absent.
func (r *GormReportRepository) DailyProfitLoss(ctx context.Context, accountID uuid.UUID) ([]report.DailyProfitLoss, error) {
	var rows []dailyProfitLossRow
	if err := r.db.WithContext(ctx).Table("sales s").
		Select(`DATE(s.sold_at) AS day,
			COALESCE(SUM(s.total_amount), 0) AS revenue,
			COALESCE(SUM(s.quantity_sold * p.cost_price), 0) AS cost`).
		Joins("LEFT JOIN products p ON p.id = s.product_id").
		Where("s.account_id = ?", accountID).
		Group("DATE(s.sold_at)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	days := make([]report.DailyProfitLoss, 0, len(rows))
	for _, row := range rows {
		days = append(days, report.NewDailyProfitLoss(row.Day, row.Revenue, row.Cost))
	}
	return days, nil
}

var _ report.ReportRepository = (*GormReportRepository)(nil)
