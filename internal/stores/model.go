package stores

import "time"

// Store is the persisted retail location record.
type Store struct {
	ID        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	Location  string    `dynamodbav:"location"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}
