package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormReportRepository_ProfitLoss(t *testing.T) {
	t.Run("computes profit from revenue and cost", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormReportRepository(gormDB)

		accountID := uuid.New()

		rows := sqlmock.NewRows([]string{"revenue", "cost", "sales_count"}).
			AddRow(decimal.NewFromInt(500), decimal.NewFromInt(250), 1)

		mock.ExpectQuery(`SELECT .* FROM sales s LEFT JOIN products p ON p.id = s.product_id WHERE s.account_id = \$1`).
			WithArgs(accountID).
			WillReturnRows(rows)

		result, err := repo.ProfitLoss(context.Background(), accountID)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Revenue.Equal(decimal.NewFromInt(500)))
		assert.True(t, result.Cost.Equal(decimal.NewFromInt(250)))
		assert.True(t, result.Profit.Equal(decimal.NewFromInt(250)))
		assert.Equal(t, int64(1), result.SalesCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports zeros for an account with no sales", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormReportRepository(gormDB)

		accountID := uuid.New()

		rows := sqlmock.NewRows([]string{"revenue", "cost", "sales_count"}).
			AddRow(decimal.Zero, decimal.Zero, 0)

		mock.ExpectQuery(`SELECT .* FROM sales s LEFT JOIN products p ON p.id = s.product_id WHERE s.account_id = \$1`).
			WithArgs(accountID).
			WillReturnRows(rows)

		result, err := repo.ProfitLoss(context.Background(), accountID)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Revenue.IsZero())
		assert.True(t, result.Profit.IsZero())
	})
}

func TestGormReportRepository_DailyProfitLoss(t *testing.T) {
	t.Run("returns one slice per trading day", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormReportRepository(gormDB)

		accountID := uuid.New()
		day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		day2 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"day", "revenue", "cost"}).
			AddRow(day1, decimal.NewFromInt(500), decimal.NewFromInt(250)).
			AddRow(day2, decimal.NewFromInt(600), decimal.NewFromInt(300))

		mock.ExpectQuery(`SELECT .* FROM sales s LEFT JOIN products p ON p.id = s.product_id WHERE s.account_id = \$1 GROUP BY DATE\(s.sold_at\) ORDER BY day ASC`).
			WithArgs(accountID).
			WillReturnRows(rows)

		days, err := repo.DailyProfitLoss(context.Background(), accountID)

		assert.NoError(t, err)
		require.Len(t, days, 2)
		assert.True(t, days[0].Profit.Equal(decimal.NewFromInt(250)))
		assert.True(t, days[1].Profit.Equal(decimal.NewFromInt(300)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
