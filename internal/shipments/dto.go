package shipments

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/enums"
)

// ShipmentDTO exposes shipment data in API responses.
type ShipmentDTO struct {
	ID               string               `json:"id"`
	RestockRequestID string               `json:"restock_request_id"`
	Carrier          *string              `json:"carrier,omitempty"`
	TrackingID       *string              `json:"tracking_id,omitempty"`
	Status           enums.ShipmentStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// FromModel maps the persisted shipment into a DTO.
func FromModel(m *Shipment) *ShipmentDTO {
	if m == nil {
		return nil
	}
	dto := &ShipmentDTO{
		ID:               m.ID,
		RestockRequestID: m.RestockRequestID,
		Status:           enums.ShipmentStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Carrier != "" {
		v := m.Carrier
		dto.Carrier = &v
	}
	if m.TrackingID != "" {
		v := m.TrackingID
		dto.TrackingID = &v
	}
	return dto
}
