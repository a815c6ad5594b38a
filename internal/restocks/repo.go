package restocks

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const statusIndex = "status-index"

// Repository handles restock request persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to restock operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new restock request record.
func (r *Repository) Create(ctx context.Context, request *RestockRequest) error {
	return r.store.Put(ctx, config.TableRestocks, request)
}

// FindByID loads a restock request by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*RestockRequest, error) {
	var request RestockRequest
	if err := r.store.Get(ctx, config.TableRestocks, id, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByStatus queries the status GSI one page at a time.
func (r *Repository) ListByStatus(ctx context.Context, status string, params pagination.Params) ([]RestockRequest, pagination.Cursor, error) {
	var requests []RestockRequest
	cursor, err := r.store.QueryByIndex(ctx, config.TableRestocks, statusIndex, "status", status, params, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, cursor, nil
}

// List scans the restock-requests table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]RestockRequest, pagination.Cursor, error) {
	var requests []RestockRequest
	cursor, err := r.store.List(ctx, config.TableRestocks, params, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, cursor, nil
}

// MarkFulfilled flips the request to fulfilled with a condition on the
// current status, so the transition happens at most once even under
// concurrent fulfill attempts. A lost race surfaces as a conditional
// check failure.
func (r *Repository) MarkFulfilled(ctx context.Context, id, supplierID string, now time.Time) error {
	_, err := r.store.API().UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.store.Table(config.TableRestocks)),
		Key:                 dynamo.Key(id),
		UpdateExpression:    aws.String("SET #status = :fulfilled, fulfilled_by = :supplier, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":fulfilled": &ddbtypes.AttributeValueMemberS{Value: string(enums.RestockStatusFulfilled)},
			":pending":   &ddbtypes.AttributeValueMemberS{Value: string(enums.RestockStatusPending)},
			":supplier":  &ddbtypes.AttributeValueMemberS{Value: supplierID},
			":now":       &ddbtypes.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}
