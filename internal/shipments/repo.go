package shipments

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const restockIndex = "restock_request_id-index"

// Repository handles shipment persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to shipment operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new shipment record.
func (r *Repository) Create(ctx context.Context, shipment *Shipment) error {
	return r.store.Put(ctx, config.TableShipments, shipment)
}

// Save overwrites the shipment record.
func (r *Repository) Save(ctx context.Context, shipment *Shipment) error {
	return r.store.Put(ctx, config.TableShipments, shipment)
}

// FindByID loads a shipment by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Shipment, error) {
	var shipment Shipment
	if err := r.store.Get(ctx, config.TableShipments, id, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// ListByRestock queries the restock-request GSI one page at a time.
func (r *Repository) ListByRestock(ctx context.Context, restockID string, params pagination.Params) ([]Shipment, pagination.Cursor, error) {
	var shipments []Shipment
	cursor, err := r.store.QueryByIndex(ctx, config.TableShipments, restockIndex, "restock_request_id", restockID, params, &shipments)
	if err != nil {
		return nil, nil, err
	}
	return shipments, cursor, nil
}

// List scans the shipments table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]Shipment, pagination.Cursor, error) {
	var shipments []Shipment
	cursor, err := r.store.List(ctx, config.TableShipments, params, &shipments)
	if err != nil {
		return nil, nil, err
	}
	return shipments, cursor, nil
}
