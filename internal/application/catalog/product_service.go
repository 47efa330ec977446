package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// ProductService handles catalog operations. Every operation is scoped to
// the calling account; no operation can see or touch another account's
// products.
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create adds a product to the account's catalog
func (s *ProductService) Create(ctx context.Context, accountID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(accountID, req.Name, req.CostPrice, req.SellingPrice, req.StockQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("account_id", accountID.String()),
		zap.String("product_id", product.ID.String()))

	return ToProductResponse(product), nil
}

// Get returns a single product owned by the account
func (s *ProductService) Get(ctx context.Context, accountID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForAccount(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns all products owned by the account
func (s *ProductService) List(ctx context.Context, accountID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAllForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update overwrites a product's name, prices, and stock. Already recorded
// sales keep the amounts they were recorded with.
func (s *ProductService) Update(ctx context.Context, accountID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForAccount(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.CostPrice, req.SellingPrice, req.StockQuantity); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product from the account's catalog. Sale records for
// the product survive its deletion.
func (s *ProductService) Delete(ctx context.Context, accountID, productID uuid.UUID) error {
	if err := s.productRepo.DeleteForAccount(ctx, accountID, productID); err != nil {
		return err
	}

	s.logger.Info("Product deleted",
		zap.String("account_id", accountID.String()),
		zap.String("product_id", productID.String()))
	return nil
}
