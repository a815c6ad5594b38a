package sales

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const storeIndex = "store_id-index"

// Repository handles sale persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to sale operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new sale record.
func (r *Repository) Create(ctx context.Context, sale *Sale) error {
	return r.store.Put(ctx, config.TableSales, sale)
}

// FindByID loads a sale by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Sale, error) {
	var sale Sale
	if err := r.store.Get(ctx, config.TableSales, id, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListByStore queries the store GSI one page at a time.
func (r *Repository) ListByStore(ctx context.Context, storeID string, params pagination.Params) ([]Sale, pagination.Cursor, error) {
	var sales []Sale
	cursor, err := r.store.QueryByIndex(ctx, config.TableSales, storeIndex, "store_id", storeID, params, &sales)
	if err != nil {
		return nil, nil, err
	}
	return sales, cursor, nil
}

// List scans the sales table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]Sale, pagination.Cursor, error) {
	var sales []Sale
	cursor, err := r.store.List(ctx, config.TableSales, params, &sales)
	if err != nil {
		return nil, nil, err
	}
	return sales, cursor, nil
}
