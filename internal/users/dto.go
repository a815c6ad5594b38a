package users

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/enums"
)

// UserDTO exposes safe account data in API responses.
type UserDTO struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Role         enums.Role `json:"role"`
	StoreID      *string    `json:"store_id,omitempty"`
	SupplierName *string    `json:"supplier_name,omitempty"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FromModel maps the persisted user into a DTO.
func FromModel(m *User) *UserDTO {
	if m == nil {
		return nil
	}
	dto := &UserDTO{
		ID:        m.ID,
		Username:  m.Username,
		Role:      enums.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.StoreID != "" {
		v := m.StoreID
		dto.StoreID = &v
	}
	if m.SupplierName != "" {
		v := m.SupplierName
		dto.SupplierName = &v
	}
	if m.ContactEmail != "" {
		v := m.ContactEmail
		dto.ContactEmail = &v
	}
	return dto
}
