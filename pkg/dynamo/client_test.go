package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type stubAPI struct {
	getOut   *dynamodb.GetItemOutput
	getErr   error
	putIn    *dynamodb.PutItemInput
	putErr   error
	queryIn  *dynamodb.QueryInput
	queryOut *dynamodb.QueryOutput
	queryErr error
	scanOut  *dynamodb.ScanOutput
	descErr  error
}

func (s *stubAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.getOut != nil {
		return s.getOut, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (s *stubAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putIn = params
	if s.putErr != nil {
		return nil, s.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (s *stubAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.queryIn = params
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if s.queryOut != nil {
		return s.queryOut, nil
	}
	return &dynamodb.QueryOutput{}, nil
}

func (s *stubAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.scanOut != nil {
		return s.scanOut, nil
	}
	return &dynamodb.ScanOutput{}, nil
}

func (s *stubAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if s.descErr != nil {
		return nil, s.descErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

type testRecord struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

func testClient(api API) *Client {
	return NewWithAPI(api, config.DynamoConfig{TablePrefix: "stylelane"})
}

func TestGetReturnsNotFoundForMissingItem(t *testing.T) {
	client := testClient(&stubAPI{})

	var rec testRecord
	err := client.Get(context.Background(), config.TableProducts, "missing", &rec)
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDecodesItem(t *testing.T) {
	api := &stubAPI{getOut: &dynamodb.GetItemOutput{Item: map[string]ddbtypes.AttributeValue{
		"id":   &ddbtypes.AttributeValueMemberS{Value: "p1"},
		"name": &ddbtypes.AttributeValueMemberS{Value: "Classic Tee"},
	}}}
	client := testClient(api)

	var rec testRecord
	if err := client.Get(context.Background(), config.TableProducts, "p1", &rec); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Name != "Classic Tee" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestPutTargetsPrefixedTable(t *testing.T) {
	api := &stubAPI{}
	client := testClient(api)

	if err := client.Put(context.Background(), config.TableProducts, testRecord{ID: "p1", Name: "Tee"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if api.putIn == nil || *api.putIn.TableName != "stylelane-products" {
		t.Fatalf("unexpected table %+v", api.putIn)
	}
}

func TestQueryByIndexPagination(t *testing.T) {
	api := &stubAPI{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]ddbtypes.AttributeValue{{
			"id":   &ddbtypes.AttributeValueMemberS{Value: "i1"},
			"name": &ddbtypes.AttributeValueMemberS{Value: "first"},
		}},
		LastEvaluatedKey: map[string]ddbtypes.AttributeValue{
			"id": &ddbtypes.AttributeValueMemberS{Value: "i1"},
		},
	}}
	client := testClient(api)

	var recs []testRecord
	cursor, err := client.QueryByIndex(context.Background(), config.TableInventory, "store_id-index", "store_id", "s1", pagination.Params{Limit: 1}, &recs)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "i1" {
		t.Fatalf("unexpected records %v", recs)
	}
	if cursor["id"] != "i1" {
		t.Fatalf("expected continuation cursor, got %v", cursor)
	}
	if api.queryIn.ExpressionAttributeNames["#f"] != "store_id" {
		t.Fatalf("unexpected key condition %v", api.queryIn.ExpressionAttributeNames)
	}

	// Feed the cursor back and verify it becomes the start key.
	token := pagination.EncodeCursor(cursor)
	if _, err := client.QueryByIndex(context.Background(), config.TableInventory, "store_id-index", "store_id", "s1", pagination.Params{Limit: 1, Cursor: token}, &recs); err != nil {
		t.Fatalf("query with cursor: %v", err)
	}
	start, ok := api.queryIn.ExclusiveStartKey["id"].(*ddbtypes.AttributeValueMemberS)
	if !ok || start.Value != "i1" {
		t.Fatalf("unexpected start key %v", api.queryIn.ExclusiveStartKey)
	}
}

func TestQueryByIndexRejectsBadCursor(t *testing.T) {
	client := testClient(&stubAPI{})
	var recs []testRecord
	if _, err := client.QueryByIndex(context.Background(), config.TableInventory, "store_id-index", "store_id", "s1", pagination.Params{Cursor: "%%%"}, &recs); err == nil {
		t.Fatal("expected cursor error")
	}
}

func TestPingPropagatesError(t *testing.T) {
	boom := errors.New("unreachable")
	client := testClient(&stubAPI{descErr: boom})
	if err := client.Ping(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestIsConditionalCheckFailed(t *testing.T) {
	err := &ddbtypes.ConditionalCheckFailedException{}
	if !IsConditionalCheckFailed(err) {
		t.Fatal("expected conditional check detection")
	}
	if IsConditionalCheckFailed(errors.New("other")) {
		t.Fatal("unexpected detection for plain error")
	}
}
