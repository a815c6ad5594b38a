package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/stores"
	"github.com/stylelane/stylelane-backend/internal/users"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
	"github.com/stylelane/stylelane-backend/pkg/types"
)

const flagshipStoreName = "StyleLane Flagship"

type userService interface {
	Create(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error)
}

type storeService interface {
	Create(ctx context.Context, input stores.CreateStoreInput) (*stores.StoreDTO, error)
	List(ctx context.Context, params pagination.Params) ([]stores.StoreDTO, pagination.Cursor, error)
}

type productService interface {
	Create(ctx context.Context, input products.CreateProductInput) (*products.ProductDTO, error)
	GetBySKU(ctx context.Context, sku string) (*products.ProductDTO, error)
}

type inventoryService interface {
	Create(ctx context.Context, input inventory.CreateInventoryInput) (*inventory.InventoryDTO, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]inventory.InventoryDTO, pagination.Cursor, error)
}

// Seeder loads the demo dataset. Every step is idempotent: records
// that already exist are left alone so the seeder can be rerun safely.
type Seeder struct {
	users     userService
	stores    storeService
	products  productService
	inventory inventoryService
	logg      *logger.Logger
}

// Result reports what the seed run actually created.
type Result struct {
	UsersCreated     int `json:"users_created"`
	StoresCreated    int `json:"stores_created"`
	ProductsCreated  int `json:"products_created"`
	InventoryCreated int `json:"inventory_created"`
}

// NewSeeder builds a seeder over the domain services.
func NewSeeder(userSvc userService, storeSvc storeService, productSvc productService, inventorySvc inventoryService, logg *logger.Logger) (*Seeder, error) {
	if userSvc == nil || storeSvc == nil || productSvc == nil || inventorySvc == nil {
		return nil, fmt.Errorf("all domain services are required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Seeder{
		users:     userSvc,
		stores:    storeSvc,
		products:  productSvc,
		inventory: inventorySvc,
		logg:      logg,
	}, nil
}

type demoProduct struct {
	sku       string
	name      string
	category  string
	price     string
	costPrice string
	size      string
	color     string
	quantity  int
	threshold int
}

var demoProducts = []demoProduct{
	{sku: "TEE-001", name: "Classic Cotton Tee", category: "tops", price: "19.99", costPrice: "6.50", size: "M", color: "white", quantity: 120, threshold: 20},
	{sku: "JNS-001", name: "Slim Fit Jeans", category: "bottoms", price: "59.99", costPrice: "22.00", size: "32", color: "indigo", quantity: 80, threshold: 15},
	{sku: "JKT-001", name: "Denim Jacket", category: "outerwear", price: "89.99", costPrice: "34.00", size: "L", color: "blue", quantity: 40, threshold: 10},
}

// Run seeds the demo store, accounts, catalog, and stock levels.
// Partial failures are aggregated; whatever succeeded stays in place.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	var errs error

	store, created, err := s.ensureStore(ctx)
	if err != nil {
		return result, err
	}
	if created {
		result.StoresCreated++
	}
	storeID, err := uuid.Parse(store.ID)
	if err != nil {
		return result, fmt.Errorf("parse store id: %w", err)
	}

	accounts := []users.CreateUserInput{
		{Username: "admin", Password: "admin123", Role: enums.RoleAdmin},
		{Username: "manager1", Password: "manager123", Role: enums.RoleManager, StoreID: &storeID},
		{Username: "supplier1", Password: "supplier123", Role: enums.RoleSupplier, SupplierName: "Acme Textiles", ContactEmail: "orders@acmetextiles.example"},
	}
	for _, account := range accounts {
		created, err := s.ensureUser(ctx, account)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if created {
			result.UsersCreated++
		}
	}

	existing, _, err := s.inventory.ListByStore(ctx, storeID, pagination.Params{Limit: pagination.MaxLimit})
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list inventory: %w", err))
		existing = nil
	}
	stocked := make(map[string]bool, len(existing))
	for _, record := range existing {
		stocked[record.ProductID] = true
	}

	for _, demo := range demoProducts {
		product, created, err := s.ensureProduct(ctx, demo)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if created {
			result.ProductsCreated++
		}
		if stocked[product.ID] {
			continue
		}
		productID, err := uuid.Parse(product.ID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parse product id: %w", err))
			continue
		}
		if _, err := s.inventory.Create(ctx, inventory.CreateInventoryInput{
			ProductID:         productID,
			StoreID:           storeID,
			Quantity:          demo.quantity,
			LowStockThreshold: demo.threshold,
		}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed inventory for %s: %w", demo.sku, err))
			continue
		}
		result.InventoryCreated++
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"users_created":     result.UsersCreated,
		"stores_created":    result.StoresCreated,
		"products_created":  result.ProductsCreated,
		"inventory_created": result.InventoryCreated,
	})
	s.logg.Info(ctx, "seed.complete")
	return result, errs
}

func (s *Seeder) ensureStore(ctx context.Context) (*stores.StoreDTO, bool, error) {
	listed, _, err := s.stores.List(ctx, pagination.Params{Limit: pagination.MaxLimit})
	if err != nil {
		return nil, false, fmt.Errorf("list stores: %w", err)
	}
	for i := range listed {
		if listed[i].Name == flagshipStoreName {
			return &listed[i], false, nil
		}
	}
	store, err := s.stores.Create(ctx, stores.CreateStoreInput{
		Name:     flagshipStoreName,
		Location: "New York, NY",
	})
	if err != nil {
		return nil, false, fmt.Errorf("create store: %w", err)
	}
	return store, true, nil
}

func (s *Seeder) ensureUser(ctx context.Context, input users.CreateUserInput) (bool, error) {
	_, err := s.users.Create(ctx, input)
	if err == nil {
		return true, nil
	}
	if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
		return false, nil
	}
	return false, fmt.Errorf("seed user %s: %w", input.Username, err)
}

func (s *Seeder) ensureProduct(ctx context.Context, demo demoProduct) (*products.ProductDTO, bool, error) {
	price, err := types.MoneyFromString(demo.price)
	if err != nil {
		return nil, false, err
	}
	cost, err := types.MoneyFromString(demo.costPrice)
	if err != nil {
		return nil, false, err
	}
	product, err := s.products.Create(ctx, products.CreateProductInput{
		SKU:       demo.sku,
		Name:      demo.name,
		Category:  demo.category,
		Price:     price,
		CostPrice: cost,
		Size:      demo.size,
		Color:     demo.color,
	})
	if err == nil {
		return product, true, nil
	}
	if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
		existing, lookupErr := s.products.GetBySKU(ctx, demo.sku)
		if lookupErr != nil {
			return nil, false, fmt.Errorf("look up product %s: %w", demo.sku, lookupErr)
		}
		return existing, false, nil
	}
	return nil, false, fmt.Errorf("seed product %s: %w", demo.sku, err)
}
