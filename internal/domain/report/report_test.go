package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/catalog"
	"github.com/hisabpro/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfitLossReport(t *testing.T) {
	t.Run("profit is revenue minus cost", func(t *testing.T) {
		accountID := uuid.New()

		r := NewProfitLossReport(accountID, decimal.NewFromInt(500), decimal.NewFromInt(250), 1, time.Now().UTC())

		assert.Equal(t, accountID, r.AccountID)
		assert.True(t, r.Revenue.Equal(decimal.NewFromInt(500)))
		assert.True(t, r.Cost.Equal(decimal.NewFromInt(250)))
		assert.True(t, r.Profit.Equal(decimal.NewFromInt(250)))
	})

	t.Run("zero figures yield zero profit", func(t *testing.T) {
		r := NewProfitLossReport(uuid.New(), decimal.Zero, decimal.Zero, 0, time.Now().UTC())

		assert.True(t, r.Profit.IsZero())
	})
}

// Follows a shop through a reprice: sell 5 units at 100 (cost 50), as a
// fresh report would show it, then reprice to 120 (cost 60) and sell
// another 5. Revenue comes from the sale snapshots, cost from quantity
// times the cost price in effect, same formulas the store aggregation
// runs in SQL.
func TestProfitLossRoundTripAcrossReprice(t *testing.T) {
	accountID := uuid.New()

	product, err := catalog.NewProduct(accountID, "Sugar 1kg", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)
	require.NoError(t, err)
	firstSale, err := sales.NewSale(accountID, product, 5)
	require.NoError(t, err)

	dayOne := NewDailyProfitLoss(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		firstSale.TotalAmount,
		product.CostPrice.Mul(decimal.NewFromInt(int64(firstSale.QuantitySold))))

	assert.True(t, dayOne.Revenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, dayOne.Cost.Equal(decimal.NewFromInt(250)))
	assert.True(t, dayOne.Profit.Equal(decimal.NewFromInt(250)))

	require.NoError(t, product.Update("Sugar 1kg", decimal.NewFromInt(60), decimal.NewFromInt(120), product.StockQuantity))
	secondSale, err := sales.NewSale(accountID, product, 5)
	require.NoError(t, err)

	dayTwo := NewDailyProfitLoss(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		secondSale.TotalAmount,
		product.CostPrice.Mul(decimal.NewFromInt(int64(secondSale.QuantitySold))))

	assert.True(t, dayTwo.Revenue.Equal(decimal.NewFromInt(600)))
	assert.True(t, dayTwo.Profit.Equal(decimal.NewFromInt(300)))

	// Daily slices sum to the aggregate report
	revenue, cost := decimal.Zero, decimal.Zero
	for _, day := range []DailyProfitLoss{dayOne, dayTwo} {
		revenue = revenue.Add(day.Revenue)
		cost = cost.Add(day.Cost)
	}
	total := NewProfitLossReport(accountID, revenue, cost, 2, time.Now().UTC())

	assert.True(t, total.Revenue.Equal(dayOne.Revenue.Add(dayTwo.Revenue)))
	assert.True(t, total.Profit.Equal(dayOne.Profit.Add(dayTwo.Profit)))
	assert.True(t, total.Profit.Equal(decimal.NewFromInt(550)))
}
