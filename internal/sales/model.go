package sales

import (
	"time"

	"github.com/stylelane/stylelane-backend/pkg/types"
)

// Sale is the persisted point-of-sale record.
type Sale struct {
	ID          string      `dynamodbav:"id"`
	InventoryID string      `dynamodbav:"inventory_id"`
	ProductID   string      `dynamodbav:"product_id"`
	StoreID     string      `dynamodbav:"store_id"`
	Quantity    int         `dynamodbav:"quantity"`
	UnitPrice   types.Money `dynamodbav:"unit_price"`
	Total       types.Money `dynamodbav:"total"`
	SoldAt      time.Time   `dynamodbav:"sold_at"`
}
