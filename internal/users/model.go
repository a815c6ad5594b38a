package users

import "time"

// User is the persisted account record.
type User struct {
	ID           string    `dynamodbav:"id"`
	Username     string    `dynamodbav:"username"`
	PasswordHash string    `dynamodbav:"password_hash"`
	Role         string    `dynamodbav:"role"`
	StoreID      string    `dynamodbav:"store_id,omitempty"`
	SupplierName string    `dynamodbav:"supplier_name,omitempty"`
	ContactEmail string    `dynamodbav:"contact_email,omitempty"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"`
}
