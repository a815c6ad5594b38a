package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
	"github.com/stylelane/stylelane-backend/pkg/types"
)

type saleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	FindByID(ctx context.Context, id string) (*Sale, error)
	ListByStore(ctx context.Context, storeID string, params pagination.Params) ([]Sale, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]Sale, pagination.Cursor, error)
}

type inventoryService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryDTO, error)
	Decrement(ctx context.Context, id uuid.UUID, quantity int) (*inventory.InventoryDTO, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id string) (*products.Product, error)
}

// Service exposes sale operations.
type Service interface {
	Create(ctx context.Context, input CreateSaleInput) (*SaleDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SaleDTO, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]SaleDTO, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]SaleDTO, pagination.Cursor, error)
}

type service struct {
	repo      saleRepository
	inventory inventoryService
	products  productFinder
}

// NewService builds a sale service with the provided dependencies.
func NewService(repo saleRepository, inventorySvc inventoryService, productRepo productFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if inventorySvc == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, inventory: inventorySvc, products: productRepo}, nil
}

// CreateSaleInput captures a point-of-sale event.
type CreateSaleInput struct {
	InventoryID uuid.UUID
	Quantity    int
}

func (s *service) Create(ctx context.Context, input CreateSaleInput) (*SaleDTO, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	record, err := s.inventory.GetByID(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, record.ProductID)
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	// The decrement clamps at zero and fires the low-stock alert when
	// the write crosses the threshold.
	if _, err := s.inventory.Decrement(ctx, input.InventoryID, input.Quantity); err != nil {
		return nil, err
	}

	total := types.NewMoney(product.Price.Mul(decimal.NewFromInt(int64(input.Quantity))))
	sale := &Sale{
		ID:          uuid.NewString(),
		InventoryID: record.ID,
		ProductID:   record.ProductID,
		StoreID:     record.StoreID,
		Quantity:    input.Quantity,
		UnitPrice:   product.Price,
		Total:       total,
		SoldAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record sale")
	}
	return FromModel(sale), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SaleDTO, error) {
	sale, err := s.repo.FindByID(ctx, id.String())
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sale not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sale")
	}
	return FromModel(sale), nil
}

func (s *service) ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]SaleDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.ListByStore(ctx, storeID.String(), params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sales")
	}
	return toDTOs(records), cursor, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]SaleDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sales")
	}
	return toDTOs(records), cursor, nil
}

func toDTOs(records []Sale) []SaleDTO {
	dtos := make([]SaleDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos
}
