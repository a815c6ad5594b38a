package stores

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

// Repository handles store persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to store operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new store record.
func (r *Repository) Create(ctx context.Context, record *Store) error {
	return r.store.Put(ctx, config.TableStores, record)
}

// Save overwrites the store record.
func (r *Repository) Save(ctx context.Context, record *Store) error {
	return r.store.Put(ctx, config.TableStores, record)
}

// FindByID loads a store by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Store, error) {
	var record Store
	if err := r.store.Get(ctx, config.TableStores, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// List scans the stores table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]Store, pagination.Cursor, error) {
	var records []Store
	cursor, err := r.store.List(ctx, config.TableStores, params, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, cursor, nil
}
