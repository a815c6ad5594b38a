package sales

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/types"
)

// SaleDTO exposes sale data in API responses.
type SaleDTO struct {
	ID          string      `json:"id"`
	InventoryID string      `json:"inventory_id"`
	ProductID   string      `json:"product_id"`
	StoreID     string      `json:"store_id"`
	Quantity    int         `json:"quantity"`
	UnitPrice   types.Money `json:"unit_price"`
	Total       types.Money `json:"total"`
	SoldAt      time.Time   `json:"sold_at"`
}

// FromModel maps the persisted sale into a DTO.
func FromModel(m *Sale) *SaleDTO {
	if m == nil {
		return nil
	}
	return &SaleDTO{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		ProductID:   m.ProductID,
		StoreID:     m.StoreID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		SoldAt:      m.SoldAt,
	}
}
