package restocks

import "time"

// RestockRequest is the persisted replenishment request record.
type RestockRequest struct {
	ID          string    `dynamodbav:"id"`
	InventoryID string    `dynamodbav:"inventory_id"`
	ProductID   string    `dynamodbav:"product_id"`
	StoreID     string    `dynamodbav:"store_id"`
	Quantity    int       `dynamodbav:"quantity"`
	Status      string    `dynamodbav:"status"`
	RequestedBy string    `dynamodbav:"requested_by,omitempty"`
	FulfilledBy string    `dynamodbav:"fulfilled_by,omitempty"`
	Notes       string    `dynamodbav:"notes,omitempty"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}
