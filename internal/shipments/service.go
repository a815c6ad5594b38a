package shipments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/internal/notify"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type shipmentRepository interface {
	Save(ctx context.Context, shipment *Shipment) error
	FindByID(ctx context.Context, id string) (*Shipment, error)
	ListByRestock(ctx context.Context, restockID string, params pagination.Params) ([]Shipment, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]Shipment, pagination.Cursor, error)
}

// Service exposes shipment operations.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ShipmentDTO, error)
	ListByRestock(ctx context.Context, restockID uuid.UUID, params pagination.Params) ([]ShipmentDTO, pagination.Cursor, error)
	List(ctx context.Context, params pagination.Params) ([]ShipmentDTO, pagination.Cursor, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*ShipmentDTO, error)
}

type service struct {
	repo     shipmentRepository
	notifier notify.Notifier
}

// NewService builds a shipment service with the provided dependencies.
func NewService(repo shipmentRepository, notifier notify.Notifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipment repository required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &service{repo: repo, notifier: notifier}, nil
}

// UpdateStatusInput advances the shipment lifecycle.
type UpdateStatusInput struct {
	Status     enums.ShipmentStatus
	Carrier    *string
	TrackingID *string
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ShipmentDTO, error) {
	shipment, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return FromModel(shipment), nil
}

func (s *service) ListByRestock(ctx context.Context, restockID uuid.UUID, params pagination.Params) ([]ShipmentDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.ListByRestock(ctx, restockID.String(), params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shipments")
	}
	return toDTOs(records), cursor, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]ShipmentDTO, pagination.Cursor, error) {
	records, cursor, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shipments")
	}
	return toDTOs(records), cursor, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*ShipmentDTO, error) {
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipment status")
	}

	shipment, err := s.load(ctx, id.String())
	if err != nil {
		return nil, err
	}

	current := enums.ShipmentStatus(shipment.Status)
	if !current.CanTransitionTo(input.Status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move shipment from %s to %s", current, input.Status))
	}

	shipment.Status = string(input.Status)
	if input.Carrier != nil {
		shipment.Carrier = strings.TrimSpace(*input.Carrier)
	}
	if input.TrackingID != nil {
		shipment.TrackingID = strings.TrimSpace(*input.TrackingID)
	}
	shipment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, shipment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipment")
	}
	s.notifier.ShipmentStatusChanged(ctx, shipment.ID, shipment.Status)
	return FromModel(shipment), nil
}

func (s *service) load(ctx context.Context, id string) (*Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	return shipment, nil
}

func toDTOs(records []Shipment) []ShipmentDTO {
	dtos := make([]ShipmentDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos
}
