package shipments

import "time"

// Shipment tracks the delivery created for a fulfilled restock request.
type Shipment struct {
	ID               string    `dynamodbav:"id"`
	RestockRequestID string    `dynamodbav:"restock_request_id"`
	Carrier          string    `dynamodbav:"carrier,omitempty"`
	TrackingID       string    `dynamodbav:"tracking_id,omitempty"`
	Status           string    `dynamodbav:"status"`
	CreatedAt        time.Time `dynamodbav:"created_at"`
	UpdatedAt        time.Time `dynamodbav:"updated_at"`
}
