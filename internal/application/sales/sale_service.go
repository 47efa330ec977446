package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/catalog"
	domainsales "github.com/hisabpro/backend/internal/domain/sales"
	"go.uber.org/zap"
)

// unknownProductName labels sales whose product was deleted after the sale
const unknownProductName = "Unknown"

// SaleService records sales against stock and lists sale history
type SaleService struct {
	txScope     TransactionScope
	saleRepo    domainsales.SaleRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(
	txScope TransactionScope,
	saleRepo domainsales.SaleRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		txScope:     txScope,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Record applies a sale atomically: the product row is locked, stock is
// checked and decremented, and the sale row is inserted, all in one
// transaction. Either both the decrement and the sale happen or neither
// does. Concurrent sales against the same product serialize on the row
// lock so stock can never go negative.
func (s *SaleService) Record(ctx context.Context, accountID uuid.UUID, req RecordSaleRequest) (*SaleResponse, error) {
	var recorded *domainsales.Sale
	var name string

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByIDForUpdate(ctx, accountID, req.ProductID)
		if err != nil {
			return err
		}

		if err := product.DeductStock(req.Quantity); err != nil {
			return err
		}

		sale, err := domainsales.NewSale(accountID, product, req.Quantity)
		if err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		if err := repos.SaleRepo().Create(ctx, sale); err != nil {
			return err
		}

		recorded = sale
		name = product.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale recorded",
		zap.String("account_id", accountID.String()),
		zap.String("sale_id", recorded.ID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity))

	return &SaleResponse{
		ID:          recorded.ID,
		ProductID:   recorded.ProductID,
		ProductName: name,
		Quantity:    recorded.QuantitySold,
		TotalAmount: recorded.TotalAmount,
		SoldAt:      recorded.SoldAt,
	}, nil
}

// List returns the account's sales, newest first, with product names
// resolved in one batch lookup. Sales whose product has been deleted get
// the Unknown placeholder.
func (s *SaleService) List(ctx context.Context, accountID uuid.UUID) ([]SaleResponse, error) {
	records, err := s.saleRepo.FindAllForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]struct{}, len(records))
	for _, sale := range records {
		if _, ok := seen[sale.ProductID]; ok {
			continue
		}
		seen[sale.ProductID] = struct{}{}
		ids = append(ids, sale.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, accountID, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}

	responses := make([]SaleResponse, 0, len(records))
	for _, sale := range records {
		name, ok := names[sale.ProductID]
		if !ok {
			name = unknownProductName
		}
		responses = append(responses, SaleResponse{
			ID:          sale.ID,
			ProductID:   sale.ProductID,
			ProductName: name,
			Quantity:    sale.QuantitySold,
			TotalAmount: sale.TotalAmount,
			SoldAt:      sale.SoldAt,
		})
	}
	return responses, nil
}
