package products

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/types"
)

// ProductDTO exposes catalog data in API responses.
type ProductDTO struct {
	ID          string      `json:"id"`
	SKU         string      `json:"sku"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Price       types.Money `json:"price"`
	CostPrice   types.Money `json:"cost_price"`
	Size        *string     `json:"size,omitempty"`
	Color       *string     `json:"color,omitempty"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// FromModel maps the persisted product into a DTO.
func FromModel(m *Product) *ProductDTO {
	if m == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:        m.ID,
		SKU:       m.SKU,
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price,
		CostPrice: m.CostPrice,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Size != "" {
		v := m.Size
		dto.Size = &v
	}
	if m.Color != "" {
		v := m.Color
		dto.Color = &v
	}
	if m.Description != "" {
		v := m.Description
		dto.Description = &v
	}
	if m.ImageURL != "" {
		v := m.ImageURL
		dto.ImageURL = &v
	}
	return dto
}
