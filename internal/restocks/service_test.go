package restocks

import (
	"context"
	"testing"
	"time"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/shipments"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type stubRestockRepo struct {
	records      map[string]*RestockRequest
	fulfilledErr error
}

func newStubRestockRepo() *stubRestockRepo {
	return &stubRestockRepo{records: map[string]*RestockRequest{}}
}

func (s *stubRestockRepo) Create(ctx context.Context, request *RestockRequest) error {
	s.records[request.ID] = request
	return nil
}

func (s *stubRestockRepo) FindByID(ctx context.Context, id string) (*RestockRequest, error) {
	if request, ok := s.records[id]; ok {
		cpy := *request
		return &cpy, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubRestockRepo) ListByStatus(ctx context.Context, status string, params pagination.Params) ([]RestockRequest, pagination.Cursor, error) {
	var out []RestockRequest
	for _, request := range s.records {
		if request.Status == status {
			out = append(out, *request)
		}
	}
	return out, nil, nil
}

func (s *stubRestockRepo) List(ctx context.Context, params pagination.Params) ([]RestockRequest, pagination.Cursor, error) {
	var out []RestockRequest
	for _, request := range s.records {
		out = append(out, *request)
	}
	return out, nil, nil
}

func (s *stubRestockRepo) MarkFulfilled(ctx context.Context, id, supplierID string, now time.Time) error {
	if s.fulfilledErr != nil {
		return s.fulfilledErr
	}
	request, ok := s.records[id]
	if !ok {
		return dynamo.ErrNotFound
	}
	if request.Status != string(enums.RestockStatusPending) {
		return &ddbtypes.ConditionalCheckFailedException{}
	}
	request.Status = string(enums.RestockStatusFulfilled)
	request.FulfilledBy = supplierID
	request.UpdatedAt = now
	return nil
}

type stubInventoryService struct {
	records    map[string]*inventory.InventoryDTO
	increments map[string]int
}

func newStubInventoryService() *stubInventoryService {
	return &stubInventoryService{
		records:    map[string]*inventory.InventoryDTO{},
		increments: map[string]int{},
	}
}

func (s *stubInventoryService) GetByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryDTO, error) {
	if record, ok := s.records[id.String()]; ok {
		cpy := *record
		return &cpy, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
}

func (s *stubInventoryService) Increment(ctx context.Context, id uuid.UUID, quantity int) (*inventory.InventoryDTO, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.increments[id.String()] += quantity
	record.Quantity += quantity
	return record, nil
}

type stubProductRepo struct {
	records map[string]*products.Product
}

func (s *stubProductRepo) FindByID(ctx context.Context, id string) (*products.Product, error) {
	if product, ok := s.records[id]; ok {
		return product, nil
	}
	return nil, dynamo.ErrNotFound
}

type stubShipmentWriter struct {
	created []*shipments.Shipment
	err     error
}

func (s *stubShipmentWriter) Create(ctx context.Context, shipment *shipments.Shipment) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, shipment)
	return nil
}

type recordingNotifier struct {
	requested []string
	fulfilled []string
}

func (r *recordingNotifier) LowStock(ctx context.Context, productName, storeID string, quantity, threshold int) {
}
func (r *recordingNotifier) RestockRequested(ctx context.Context, productName, storeID string, quantity int) {
	r.requested = append(r.requested, productName)
}
func (r *recordingNotifier) RestockFulfilled(ctx context.Context, productName, storeID string, quantity int) {
	r.fulfilled = append(r.fulfilled, productName)
}
func (r *recordingNotifier) ShipmentStatusChanged(ctx context.Context, shipmentID, status string) {}

type restockFixture struct {
	repo      *stubRestockRepo
	inv       *stubInventoryService
	products  *stubProductRepo
	shipments *stubShipmentWriter
	notifier  *recordingNotifier
	svc       Service
}

func newRestockFixture(t *testing.T) *restockFixture {
	t.Helper()
	f := &restockFixture{
		repo:      newStubRestockRepo(),
		inv:       newStubInventoryService(),
		products:  &stubProductRepo{records: map[string]*products.Product{}},
		shipments: &stubShipmentWriter{},
		notifier:  &recordingNotifier{},
	}
	svc, err := NewService(f.repo, f.inv, f.products, f.shipments, f.notifier)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	f.svc = svc
	return f
}

func (f *restockFixture) seedInventory() uuid.UUID {
	id := uuid.New()
	productID := uuid.NewString()
	f.inv.records[id.String()] = &inventory.InventoryDTO{
		ID:        id.String(),
		ProductID: productID,
		StoreID:   uuid.NewString(),
		Quantity:  2,
	}
	f.products.records[productID] = &products.Product{ID: productID, Name: "Denim Jacket"}
	return id
}

func TestCreateRestockRequest(t *testing.T) {
	f := newRestockFixture(t)
	invID := f.seedInventory()
	requestedBy := uuid.New()

	dto, err := f.svc.Create(context.Background(), CreateRestockInput{
		InventoryID: invID,
		Quantity:    50,
		Notes:       "  holiday rush  ",
		RequestedBy: requestedBy,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.RestockStatusPending {
		t.Fatalf("unexpected status %s", dto.Status)
	}
	if dto.InventoryID != invID.String() {
		t.Fatalf("unexpected inventory id %s", dto.InventoryID)
	}
	if dto.Notes == nil || *dto.Notes != "holiday rush" {
		t.Fatalf("unexpected notes %v", dto.Notes)
	}
	if dto.RequestedBy == nil || *dto.RequestedBy != requestedBy.String() {
		t.Fatalf("unexpected requester %v", dto.RequestedBy)
	}
	if len(f.notifier.requested) != 1 || f.notifier.requested[0] != "Denim Jacket" {
		t.Fatalf("unexpected notifications %v", f.notifier.requested)
	}
}

func TestCreateRejectsNonPositiveQuantity(t *testing.T) {
	f := newRestockFixture(t)
	invID := f.seedInventory()

	_, err := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: invID, Quantity: 0, RequestedBy: uuid.New()})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateMissingInventory(t *testing.T) {
	f := newRestockFixture(t)

	_, err := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: uuid.New(), Quantity: 10, RequestedBy: uuid.New()})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFulfillCreatesShipmentAndReplenishes(t *testing.T) {
	f := newRestockFixture(t)
	invID := f.seedInventory()
	dto, err := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: invID, Quantity: 30, RequestedBy: uuid.New()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	supplierID := uuid.New()

	fulfilled, err := f.svc.Fulfill(context.Background(), uuid.MustParse(dto.ID), supplierID)
	if err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if fulfilled.Status != enums.RestockStatusFulfilled {
		t.Fatalf("unexpected status %s", fulfilled.Status)
	}
	if fulfilled.FulfilledBy == nil || *fulfilled.FulfilledBy != supplierID.String() {
		t.Fatalf("unexpected supplier %v", fulfilled.FulfilledBy)
	}
	if len(f.shipments.created) != 1 {
		t.Fatalf("expected one shipment, got %d", len(f.shipments.created))
	}
	shipment := f.shipments.created[0]
	if shipment.RestockRequestID != dto.ID {
		t.Fatalf("shipment bound to %s, want %s", shipment.RestockRequestID, dto.ID)
	}
	if shipment.Status != string(enums.ShipmentStatusPreparing) {
		t.Fatalf("unexpected shipment status %s", shipment.Status)
	}
	if got := f.inv.increments[invID.String()]; got != 30 {
		t.Fatalf("expected increment of 30, got %d", got)
	}
	if len(f.notifier.fulfilled) != 1 {
		t.Fatalf("unexpected notifications %v", f.notifier.fulfilled)
	}
}

func TestFulfillTwiceConflicts(t *testing.T) {
	f := newRestockFixture(t)
	invID := f.seedInventory()
	dto, _ := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: invID, Quantity: 30, RequestedBy: uuid.New()})
	requestID := uuid.MustParse(dto.ID)

	if _, err := f.svc.Fulfill(context.Background(), requestID, uuid.New()); err != nil {
		t.Fatalf("first fulfill: %v", err)
	}
	_, err := f.svc.Fulfill(context.Background(), requestID, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if got := f.inv.increments[invID.String()]; got != 30 {
		t.Fatalf("inventory incremented twice: %d", got)
	}
}

func TestFulfillMissingRequest(t *testing.T) {
	f := newRestockFixture(t)

	_, err := f.svc.Fulfill(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	f := newRestockFixture(t)
	invID := f.seedInventory()
	first, _ := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: invID, Quantity: 10, RequestedBy: uuid.New()})
	second, _ := f.svc.Create(context.Background(), CreateRestockInput{InventoryID: invID, Quantity: 20, RequestedBy: uuid.New()})
	if _, err := f.svc.Fulfill(context.Background(), uuid.MustParse(first.ID), uuid.New()); err != nil {
		t.Fatalf("fulfill: %v", err)
	}

	pending, _, err := f.svc.List(context.Background(), "pending", pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != second.ID {
		t.Fatalf("unexpected pending requests %+v", pending)
	}

	all, _, err := f.svc.List(context.Background(), "", pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	f := newRestockFixture(t)

	_, _, err := f.svc.List(context.Background(), "cancelled", pagination.Params{Limit: 10})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
