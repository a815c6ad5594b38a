package restocks

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/enums"
)

// RestockDTO exposes restock request data in API responses.
type RestockDTO struct {
	ID          string              `json:"id"`
	InventoryID string              `json:"inventory_id"`
	ProductID   string              `json:"product_id"`
	StoreID     string              `json:"store_id"`
	Quantity    int                 `json:"quantity"`
	Status      enums.RestockStatus `json:"status"`
	RequestedBy *string             `json:"requested_by,omitempty"`
	FulfilledBy *string             `json:"fulfilled_by,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// FromModel maps the persisted request into a DTO.
func FromModel(m *RestockRequest) *RestockDTO {
	if m == nil {
		return nil
	}
	dto := &RestockDTO{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		ProductID:   m.ProductID,
		StoreID:     m.StoreID,
		Quantity:    m.Quantity,
		Status:      enums.RestockStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.RequestedBy != "" {
		v := m.RequestedBy
		dto.RequestedBy = &v
	}
	if m.FulfilledBy != "" {
		v := m.FulfilledBy
		dto.FulfilledBy = &v
	}
	if m.Notes != "" {
		v := m.Notes
		dto.Notes = &v
	}
	return dto
}
