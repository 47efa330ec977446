package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	accountID := uuid.New()

	t.Run("creates valid product", func(t *testing.T) {
		p, err := NewProduct(accountID, "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)

		require.NoError(t, err)
		assert.Equal(t, accountID, p.AccountID)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, 10, p.StockQuantity)
		assert.Equal(t, 1, p.Version)
		assert.NotEqual(t, uuid.Nil, p.ID)
	})

	t.Run("trims name whitespace", func(t *testing.T) {
		p, err := NewProduct(accountID, "  Widget  ", decimal.Zero, decimal.Zero, 0)

		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(accountID, "   ", decimal.Zero, decimal.Zero, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative cost price", func(t *testing.T) {
		_, err := NewProduct(accountID, "Widget", decimal.NewFromInt(-1), decimal.Zero, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative selling price", func(t *testing.T) {
		_, err := NewProduct(accountID, "Widget", decimal.Zero, decimal.NewFromInt(-1), 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct(accountID, "Widget", decimal.Zero, decimal.Zero, -5)
		assert.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	t.Run("overwrites all fields and bumps version", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)
		require.NoError(t, err)

		err = p.Update("Updated Widget", decimal.NewFromInt(60), decimal.NewFromInt(120), 20)

		require.NoError(t, err)
		assert.Equal(t, "Updated Widget", p.Name)
		assert.True(t, p.CostPrice.Equal(decimal.NewFromInt(60)))
		assert.True(t, p.SellingPrice.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, 20, p.StockQuantity)
		assert.Equal(t, 2, p.Version)
	})

	t.Run("invalid update leaves product unchanged", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)
		require.NoError(t, err)

		err = p.Update("Updated", decimal.NewFromInt(-1), decimal.NewFromInt(120), 20)

		assert.Error(t, err)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, 10, p.StockQuantity)
		assert.Equal(t, 1, p.Version)
	})
}

func TestProduct_DeductStock(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)
		require.NoError(t, err)

		err = p.DeductStock(4)

		require.NoError(t, err)
		assert.Equal(t, 6, p.StockQuantity)
	})

	t.Run("allows deducting exactly the remaining stock", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 5)
		require.NoError(t, err)

		err = p.DeductStock(5)

		require.NoError(t, err)
		assert.Equal(t, 0, p.StockQuantity)
	})

	t.Run("rejects quantity above stock and keeps stock unchanged", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 5)
		require.NoError(t, err)

		err = p.DeductStock(6)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 5, p.StockQuantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 5)
		require.NoError(t, err)

		assert.Error(t, p.DeductStock(0))
		assert.Error(t, p.DeductStock(-1))
		assert.Equal(t, 5, p.StockQuantity)
	})
}

func TestProduct_SaleAmount(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Widget", decimal.NewFromInt(50), decimal.NewFromInt(100), 10)
	require.NoError(t, err)

	assert.True(t, p.SaleAmount(5).Equal(decimal.NewFromInt(500)))
}
