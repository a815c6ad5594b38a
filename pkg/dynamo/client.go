package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

// API is the slice of the DynamoDB client used by the store layer.
// Narrowing it here keeps repositories stubbable in tests.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// ErrNotFound signals a missing item for the requested key.
var ErrNotFound = errors.New("dynamo: item not found")

// Client issues get/put/query operations against the named record
// collections. Each write is independent; there are no cross-collection
// transactions and the last write wins.
type Client struct {
	api API
	cfg config.DynamoConfig
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(context.Context) error
}

// New bootstraps a DynamoDB client for the configured region. An
// endpoint override points the client at a local DynamoDB.
func New(ctx context.Context, awsCfg config.AWSConfig, cfg config.DynamoConfig, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(awsCfg.Region) == "" {
		return nil, errors.New("aws region is required")
	}

	loaded, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsCfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	api := dynamodb.NewFromConfig(loaded, func(o *dynamodb.Options) {
		if endpoint := strings.TrimSpace(awsCfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})

	client := &Client{api: api, cfg: cfg}
	if logg != nil {
		logg.Info(ctx, "dynamodb client initialized")
	}
	return client, nil
}

// NewWithAPI binds an existing API implementation, used by tests.
func NewWithAPI(api API, cfg config.DynamoConfig) *Client {
	return &Client{api: api, cfg: cfg}
}

// Table resolves the full table name for a collection suffix.
func (c *Client) Table(collection string) string {
	return c.cfg.Table(collection)
}

// API exposes the underlying DynamoDB surface for repositories that
// need condition expressions beyond the generic helpers.
func (c *Client) API() API {
	return c.api
}

func (c *Client) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.RequestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.cfg.RequestTimeout)
}

// Key builds the primary-key attribute map for an id.
func Key(id string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"id": &ddbtypes.AttributeValueMemberS{Value: id},
	}
}

// Get loads the record with the given id into out.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: tableName(c.Table(collection)),
		Key:       Key(id),
	})
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if len(resp.Item) == 0 {
		return ErrNotFound
	}
	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// Put upserts the record by id, replacing every attribute.
func (c *Client) Put(ctx context.Context, collection string, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", collection, err)
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: tableName(c.Table(collection)),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put %s record: %w", collection, err)
	}
	return nil
}

// QueryByIndex returns the records whose indexed field equals value,
// decoding them into out (a pointer to a slice). The returned cursor is
// non-nil when more pages remain.
func (c *Client) QueryByIndex(ctx context.Context, collection, index, field, value string, params pagination.Params, out any) (pagination.Cursor, error) {
	limit := int32(pagination.NormalizeLimit(params.Limit))
	input := &dynamodb.QueryInput{
		TableName:              tableName(c.Table(collection)),
		IndexName:              &index,
		KeyConditionExpression: strPtr("#f = :v"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":v": &ddbtypes.AttributeValueMemberS{Value: value},
		},
		Limit: &limit,
	}

	start, err := startKey(params.Cursor)
	if err != nil {
		return nil, err
	}
	input.ExclusiveStartKey = start

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.api.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(resp.Items, out); err != nil {
		return nil, fmt.Errorf("decode %s query: %w", collection, err)
	}
	return cursorFromKey(resp.LastEvaluatedKey), nil
}

// List scans the collection a page at a time.
func (c *Client) List(ctx context.Context, collection string, params pagination.Params, out any) (pagination.Cursor, error) {
	limit := int32(pagination.NormalizeLimit(params.Limit))
	input := &dynamodb.ScanInput{
		TableName: tableName(c.Table(collection)),
		Limit:     &limit,
	}

	start, err := startKey(params.Cursor)
	if err != nil {
		return nil, err
	}
	input.ExclusiveStartKey = start

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.api.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(resp.Items, out); err != nil {
		return nil, fmt.Errorf("decode %s scan: %w", collection, err)
	}
	return cursorFromKey(resp.LastEvaluatedKey), nil
}

// Ping verifies connectivity by describing the users table.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.api == nil {
		return errors.New("dynamo client not initialized")
	}
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	_, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: tableName(c.Table(config.TableUsers)),
	})
	return err
}

func startKey(token string) (map[string]ddbtypes.AttributeValue, error) {
	cursor, err := pagination.ParseCursor(token)
	if err != nil {
		return nil, err
	}
	if len(cursor) == 0 {
		return nil, nil
	}
	key := make(map[string]ddbtypes.AttributeValue, len(cursor))
	for attr, value := range cursor {
		key[attr] = &ddbtypes.AttributeValueMemberS{Value: value}
	}
	return key, nil
}

func cursorFromKey(key map[string]ddbtypes.AttributeValue) pagination.Cursor {
	if len(key) == 0 {
		return nil
	}
	cursor := make(pagination.Cursor, len(key))
	for attr, value := range key {
		if s, ok := value.(*ddbtypes.AttributeValueMemberS); ok {
			cursor[attr] = s.Value
		}
	}
	return cursor
}

func tableName(name string) *string {
	return &name
}

func strPtr(s string) *string {
	return &s
}
