package inventory

import "time"

// InventoryDTO exposes stock levels in API responses.
type InventoryDTO struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	StoreID           string    `json:"store_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FromModel maps the persisted record into a DTO.
func FromModel(m *InventoryRecord) *InventoryDTO {
	if m == nil {
		return nil
	}
	return &InventoryDTO{
		ID:                m.ID,
		ProductID:         m.ProductID,
		StoreID:           m.StoreID,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
