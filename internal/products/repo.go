package products

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const skuIndex = "sku-index"

// Repository handles product persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to product operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new product record.
func (r *Repository) Create(ctx context.Context, product *Product) error {
	return r.store.Put(ctx, config.TableProducts, product)
}

// Save overwrites the product record.
func (r *Repository) Save(ctx context.Context, product *Product) error {
	return r.store.Put(ctx, config.TableProducts, product)
}

// FindByID loads a product by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := r.store.Get(ctx, config.TableProducts, id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySKU resolves a product through the sku GSI.
func (r *Repository) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	var matches []Product
	if _, err := r.store.QueryByIndex(ctx, config.TableProducts, skuIndex, "sku", sku, pagination.Params{Limit: 1}, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, dynamo.ErrNotFound
	}
	return &matches[0], nil
}

// List scans the products table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]Product, pagination.Cursor, error) {
	var products []Product
	cursor, err := r.store.List(ctx, config.TableProducts, params, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, cursor, nil
}
