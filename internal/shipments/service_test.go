package shipments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type stubShipmentRepo struct {
	records map[string]*Shipment
	err     error
	saved   int
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{records: map[string]*Shipment{}}
}

func (s *stubShipmentRepo) Save(ctx context.Context, shipment *Shipment) error {
	if s.err != nil {
		return s.err
	}
	s.saved++
	s.records[shipment.ID] = shipment
	return nil
}

func (s *stubShipmentRepo) FindByID(ctx context.Context, id string) (*Shipment, error) {
	if s.err != nil {
		return nil, s.err
	}
	if shipment, ok := s.records[id]; ok {
		cpy := *shipment
		return &cpy, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubShipmentRepo) ListByRestock(ctx context.Context, restockID string, params pagination.Params) ([]Shipment, pagination.Cursor, error) {
	var out []Shipment
	for _, shipment := range s.records {
		if shipment.RestockRequestID == restockID {
			out = append(out, *shipment)
		}
	}
	return out, nil, nil
}

func (s *stubShipmentRepo) List(ctx context.Context, params pagination.Params) ([]Shipment, pagination.Cursor, error) {
	var out []Shipment
	for _, shipment := range s.records {
		out = append(out, *shipment)
	}
	return out, nil, nil
}

type stubNotifier struct {
	statusChanges []string
}

func (s *stubNotifier) LowStock(ctx context.Context, productName, storeID string, quantity, threshold int) {
}
func (s *stubNotifier) RestockRequested(ctx context.Context, productName, storeID string, quantity int) {
}
func (s *stubNotifier) RestockFulfilled(ctx context.Context, productName, storeID string, quantity int) {
}
func (s *stubNotifier) ShipmentStatusChanged(ctx context.Context, shipmentID, status string) {
	s.statusChanges = append(s.statusChanges, status)
}

func seedShipment(repo *stubShipmentRepo, status enums.ShipmentStatus) uuid.UUID {
	id := uuid.New()
	repo.records[id.String()] = &Shipment{
		ID:               id.String(),
		RestockRequestID: uuid.NewString(),
		Status:           string(status),
		CreatedAt:        time.Now(),
	}
	return id
}

func TestUpdateStatusAdvancesLifecycle(t *testing.T) {
	repo := newStubShipmentRepo()
	notifier := &stubNotifier{}
	svc, _ := NewService(repo, notifier)
	id := seedShipment(repo, enums.ShipmentStatusPreparing)

	carrier := "UPS"
	tracking := "1Z999"
	dto, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{
		Status:     enums.ShipmentStatusShipped,
		Carrier:    &carrier,
		TrackingID: &tracking,
	})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if dto.Status != enums.ShipmentStatusShipped {
		t.Fatalf("unexpected status %s", dto.Status)
	}
	if dto.Carrier == nil || *dto.Carrier != "UPS" {
		t.Fatalf("unexpected carrier %v", dto.Carrier)
	}
	if len(notifier.statusChanges) != 1 || notifier.statusChanges[0] != "shipped" {
		t.Fatalf("unexpected notifications %v", notifier.statusChanges)
	}

	dto, err = svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: enums.ShipmentStatusDelivered})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if dto.Status != enums.ShipmentStatusDelivered {
		t.Fatalf("unexpected status %s", dto.Status)
	}
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	repo := newStubShipmentRepo()
	svc, _ := NewService(repo, &stubNotifier{})
	id := seedShipment(repo, enums.ShipmentStatusPreparing)

	_, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: enums.ShipmentStatusDelivered})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestUpdateStatusRejectsBackwardsMove(t *testing.T) {
	repo := newStubShipmentRepo()
	svc, _ := NewService(repo, &stubNotifier{})
	id := seedShipment(repo, enums.ShipmentStatusDelivered)

	_, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: enums.ShipmentStatusShipped})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	repo := newStubShipmentRepo()
	svc, _ := NewService(repo, &stubNotifier{})
	id := seedShipment(repo, enums.ShipmentStatusPreparing)

	_, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: enums.ShipmentStatus("lost")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListByRestock(t *testing.T) {
	repo := newStubShipmentRepo()
	svc, _ := NewService(repo, &stubNotifier{})
	restockID := uuid.New()
	shipID := uuid.NewString()
	repo.records[shipID] = &Shipment{ID: shipID, RestockRequestID: restockID.String(), Status: "preparing"}
	seedShipment(repo, enums.ShipmentStatusPreparing)

	dtos, _, err := svc.ListByRestock(context.Background(), restockID, pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list by restock: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != shipID {
		t.Fatalf("unexpected shipments %+v", dtos)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(newStubShipmentRepo(), &stubNotifier{})
	_, err := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
