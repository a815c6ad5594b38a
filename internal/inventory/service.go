package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/internal/notify"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/stores"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type inventoryRepository interface {
	Create(ctx context.Context, record *InventoryRecord) error
	Save(ctx context.Context, record *InventoryRecord) error
	FindByID(ctx context.Context, id string) (*InventoryRecord, error)
	ListByStore(ctx context.Context, storeID string, params pagination.Params) ([]InventoryRecord, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]InventoryRecord, pagination.Cursor, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id string) (*products.Product, error)
}

type storeFinder interface {
	FindByID(ctx context.Context, id string) (*stores.Store, error)
}

// Service exposes stock operations.
type Service interface {
	Create(ctx context.Context, input CreateInventoryInput) (*InventoryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InventoryDTO, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]InventoryDTO, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]InventoryDTO, pagination.Cursor, error)
	SetQuantity(ctx context.Context, id uuid.UUID, input SetQuantityInput) (*InventoryDTO, error)
	Decrement(ctx context.Context, id uuid.UUID, quantity int) (*InventoryDTO, error)
	Increment(ctx context.Context, id uuid.UUID, quantity int) (*InventoryDTO, error)
}

type service struct {
	repo     inventoryRepository
	products productFinder
	stores   storeFinder
	notifier notify.Notifier
}

// NewService builds an inventory service with the provided dependencies.
func NewService(repo inventoryRepository, productRepo productFinder, storeRepo storeFinder, notifier notify.Notifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if storeRepo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &service{repo: repo, products: productRepo, stores: storeRepo, notifier: notifier}, nil
}

// CreateInventoryInput captures creation-time stock data.
type CreateInventoryInput struct {
	ProductID         uuid.UUID
	StoreID           uuid.UUID
	Quantity          int
	LowStockThreshold int
}

// SetQuantityInput captures a direct quantity adjustment.
type SetQuantityInput struct {
	Quantity          int
	LowStockThreshold *int
}

func (s *service) Create(ctx context.Context, input CreateInventoryInput) (*InventoryDTO, error) {
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if input.LowStockThreshold < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "low stock threshold must be non-negative")
	}

	if _, err := s.products.FindByID(ctx, input.ProductID.String()); err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if _, err := s.stores.FindByID(ctx, input.StoreID.String()); err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	now := time.Now().UTC()
	record := &InventoryRecord{
		ID:                uuid.NewString(),
		ProductID:         input.ProductID.String(),
		StoreID:           input.StoreID.String(),
		Quantity:          input.Quantity,
		LowStockThreshold: input.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inventory record")
	}
	return FromModel(record), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*InventoryDTO, error) {
	record, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return FromModel(record), nil
}

func (s *service) ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]InventoryDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.ListByStore(ctx, storeID.String(), params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	return toDTOs(records), cursor, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]InventoryDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	return toDTOs(records), cursor, nil
}

func (s *service) SetQuantity(ctx context.Context, id uuid.UUID, input SetQuantityInput) (*InventoryDTO, error) {
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if input.LowStockThreshold != nil && *input.LowStockThreshold < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "low stock threshold must be non-negative")
	}

	record, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}

	oldQuantity := record.Quantity
	record.Quantity = input.Quantity
	if input.LowStockThreshold != nil {
		record.LowStockThreshold = *input.LowStockThreshold
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save inventory record")
	}
	s.maybeNotifyLowStock(ctx, record, oldQuantity)
	return FromModel(record), nil
}

func (s *service) Decrement(ctx context.Context, id uuid.UUID, quantity int) (*InventoryDTO, error) {
	return s.applyDelta(ctx, id, -quantity)
}

func (s *service) Increment(ctx context.Context, id uuid.UUID, quantity int) (*InventoryDTO, error) {
	return s.applyDelta(ctx, id, quantity)
}

func (s *service) applyDelta(ctx context.Context, id uuid.UUID, delta int) (*InventoryDTO, error) {
	if delta == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	record, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}

	oldQuantity := record.Quantity
	next := record.Quantity + delta
	if next < 0 {
		// Oversells clamp rather than fail.
		next = 0
	}
	record.Quantity = next
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save inventory record")
	}
	s.maybeNotifyLowStock(ctx, record, oldQuantity)
	return FromModel(record), nil
}

func (s *service) load(ctx context.Context, id string) (*InventoryRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory record")
	}
	return record, nil
}

// maybeNotifyLowStock fires exactly once, on the write that crosses the
// threshold from above.
func (s *service) maybeNotifyLowStock(ctx context.Context, record *InventoryRecord, oldQuantity int) {
	threshold := record.LowStockThreshold
	if threshold <= 0 {
		return
	}
	if oldQuantity <= threshold || record.Quantity > threshold {
		return
	}
	name := record.ProductID
	if product, err := s.products.FindByID(ctx, record.ProductID); err == nil {
		name = product.Name
	}
	s.notifier.LowStock(ctx, name, record.StoreID, record.Quantity, threshold)
}

func toDTOs(records []InventoryRecord) []InventoryDTO {
	dtos := make([]InventoryDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos
}
