package inventory

import "time"

// InventoryRecord tracks on-hand quantity for a product at a store.
type InventoryRecord struct {
	ID                string    `dynamodbav:"id"`
	ProductID         string    `dynamodbav:"product_id"`
	StoreID           string    `dynamodbav:"store_id"`
	Quantity          int       `dynamodbav:"quantity"`
	LowStockThreshold int       `dynamodbav:"low_stock_threshold"`
	CreatedAt         time.Time `dynamodbav:"created_at"`
	UpdatedAt         time.Time `dynamodbav:"updated_at"`
}
