package inventory

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const storeIndex = "store_id-index"

// Repository handles inventory persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to inventory operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new inventory record.
func (r *Repository) Create(ctx context.Context, record *InventoryRecord) error {
	return r.store.Put(ctx, config.TableInventory, record)
}

// Save overwrites the inventory record.
func (r *Repository) Save(ctx context.Context, record *InventoryRecord) error {
	return r.store.Put(ctx, config.TableInventory, record)
}

// FindByID loads an inventory record by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*InventoryRecord, error) {
	var record InventoryRecord
	if err := r.store.Get(ctx, config.TableInventory, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByStore queries the store GSI one page at a time.
func (r *Repository) ListByStore(ctx context.Context, storeID string, params pagination.Params) ([]InventoryRecord, pagination.Cursor, error) {
	var records []InventoryRecord
	cursor, err := r.store.QueryByIndex(ctx, config.TableInventory, storeIndex, "store_id", storeID, params, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, cursor, nil
}

// List scans the inventory table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]InventoryRecord, pagination.Cursor, error) {
	var records []InventoryRecord
	cursor, err := r.store.List(ctx, config.TableInventory, params, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, cursor, nil
}
