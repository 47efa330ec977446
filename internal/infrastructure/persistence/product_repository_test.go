package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB creates a gorm.DB backed by a mocked SQL connection
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func productColumns() []string {
	return []string{"id", "account_id", "name", "cost_price", "selling_price", "stock_quantity", "version"}
}

func TestGormProductRepository_FindByIDForAccount(t *testing.T) {
	t.Run("finds product owned by account", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		accountID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, accountID, "Sugar 1kg", decimal.NewFromInt(50), decimal.NewFromInt(100), 10, 1)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE account_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(accountID, productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForAccount(context.Background(), accountID, productID)

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Sugar 1kg", product.Name)
		assert.True(t, product.SellingPrice.Equal(decimal.NewFromInt(100)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for another account's product", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		accountID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE account_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(accountID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByIDForAccount(context.Background(), accountID, productID)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("issues a row-level lock", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		accountID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, accountID, "Sugar 1kg", decimal.NewFromInt(50), decimal.NewFromInt(100), 10, 1)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE account_id = \$1 AND id = \$2 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(accountID, productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForUpdate(context.Background(), accountID, productID)

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 10, product.StockQuantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_DeleteForAccount(t *testing.T) {
	t.Run("deletes owned product", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		accountID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE account_id = \$1 AND id = \$2`).
			WithArgs(accountID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForAccount(context.Background(), accountID, productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		accountID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE account_id = \$1 AND id = \$2`).
			WithArgs(accountID, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForAccount(context.Background(), accountID, productID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	t.Run("returns nil for empty input", func(t *testing.T) {
		gormDB, _, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		products, err := repo.FindByIDs(context.Background(), uuid.New(), nil)

		assert.NoError(t, err)
		assert.Nil(t, products)
	})
}
