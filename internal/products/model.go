package products

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/types"
)

// Product is the persisted catalog record.
type Product struct {
	ID          string      `dynamodbav:"id"`
	SKU         string      `dynamodbav:"sku"`
	Name        string      `dynamodbav:"name"`
	Category    string      `dynamodbav:"category"`
	Price       types.Money `dynamodbav:"price"`
	CostPrice   types.Money `dynamodbav:"cost_price"`
	Size        string      `dynamodbav:"size,omitempty"`
	Color       string      `dynamodbav:"color,omitempty"`
	Description string      `dynamodbav:"description,omitempty"`
	ImageURL    string      `dynamodbav:"image_url,omitempty"`
	CreatedAt   time.Time   `dynamodbav:"created_at"`
	UpdatedAt   time.Time   `dynamodbav:"updated_at"`
}
