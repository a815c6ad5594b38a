package restocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/notify"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/shipments"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type restockRepository interface {
	Create(ctx context.Context, request *RestockRequest) error
	FindByID(ctx context.Context, id string) (*RestockRequest, error)
	ListByStatus(ctx context.Context, status string, params pagination.Params) ([]RestockRequest, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]RestockRequest, pagination.Cursor, error)
	MarkFulfilled(ctx context.Context, id, supplierID string, now time.Time) error
}

type inventoryService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryDTO, error)
	Increment(ctx context.Context, id uuid.UUID, quantity int) (*inventory.InventoryDTO, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id string) (*products.Product, error)
}

type shipmentWriter interface {
	Create(ctx context.Context, shipment *shipments.Shipment) error
}

// Service exposes restock request operations.
type Service interface {
	Create(ctx context.Context, input CreateRestockInput) (*RestockDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RestockDTO, error)
	List(ctx context.Context, status string, params pagination.Params) ([]RestockDTO, pagination.Cursor, error)
	Fulfill(ctx context.Context, id, supplierID uuid.UUID) (*RestockDTO, error)
}

type service struct {
	repo      restockRepository
	inventory inventoryService
	products  productFinder
	shipments shipmentWriter
	notifier  notify.Notifier
}

// NewService builds a restock service with the provided dependencies.
func NewService(repo restockRepository, inventorySvc inventoryService, productRepo productFinder, shipmentRepo shipmentWriter, notifier notify.Notifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("restock repository required")
	}
	if inventorySvc == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if shipmentRepo == nil {
		return nil, fmt.Errorf("shipment repository required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &service{
		repo:      repo,
		inventory: inventorySvc,
		products:  productRepo,
		shipments: shipmentRepo,
		notifier:  notifier,
	}, nil
}

// CreateRestockInput captures a manager's replenishment request.
type CreateRestockInput struct {
	InventoryID uuid.UUID
	Quantity    int
	Notes       string
	RequestedBy uuid.UUID
}

func (s *service) Create(ctx context.Context, input CreateRestockInput) (*RestockDTO, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	record, err := s.inventory.GetByID(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	request := &RestockRequest{
		ID:          uuid.NewString(),
		InventoryID: record.ID,
		ProductID:   record.ProductID,
		StoreID:     record.StoreID,
		Quantity:    input.Quantity,
		Status:      string(enums.RestockStatusPending),
		RequestedBy: input.RequestedBy.String(),
		Notes:       strings.TrimSpace(input.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create restock request")
	}

	s.notifier.RestockRequested(ctx, s.productName(ctx, request.ProductID), request.StoreID, request.Quantity)
	return FromModel(request), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*RestockDTO, error) {
	request, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return FromModel(request), nil
}

func (s *service) List(ctx context.Context, status string, params pagination.Params) ([]RestockDTO, pagination.Cursor, error) {
	status = strings.TrimSpace(status)

	var (
		records []RestockRequest
		cursor  pagination.Cursor
		err     error
	)
	if status != "" {
		parsed, parseErr := enums.ParseRestockStatus(status)
		if parseErr != nil {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid restock status")
		}
		records, cursor, err = s.repo.ListByStatus(ctx, string(parsed), params)
	} else {
		records, cursor, err = s.repo.List(ctx, params)
	}
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list restock requests")
	}

	dtos := make([]RestockDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos, cursor, nil
}

// Fulfill flips a pending request to fulfilled, creates the shipment,
// and replenishes the inventory. The status flip is guarded by a
// conditional write so a request is fulfilled at most once; the loser
// of a race gets a state conflict.
func (s *service) Fulfill(ctx context.Context, id, supplierID uuid.UUID) (*RestockDTO, error) {
	request, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.MarkFulfilled(ctx, request.ID, supplierID.String(), now); err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "restock request already fulfilled")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fulfill restock request")
	}
	request.Status = string(enums.RestockStatusFulfilled)
	request.FulfilledBy = supplierID.String()
	request.UpdatedAt = now

	shipment := &shipments.Shipment{
		ID:               uuid.NewString(),
		RestockRequestID: request.ID,
		Status:           string(enums.ShipmentStatusPreparing),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipment")
	}

	inventoryID, err := uuid.Parse(request.InventoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse inventory id")
	}
	if _, err := s.inventory.Increment(ctx, inventoryID, request.Quantity); err != nil {
		return nil, err
	}

	s.notifier.RestockFulfilled(ctx, s.productName(ctx, request.ProductID), request.StoreID, request.Quantity)
	return FromModel(request), nil
}

func (s *service) load(ctx context.Context, id string) (*RestockRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restock request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restock request")
	}
	return request, nil
}

func (s *service) productName(ctx context.Context, productID string) string {
	if product, err := s.products.FindByID(ctx, productID); err == nil {
		return product.Name
	}
	return productID
}
