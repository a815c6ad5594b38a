package sns

import (
	"context"
	"errors"
	"testing"

	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

type stubAPI struct {
	publishIn  *awssns.PublishInput
	publishErr error
	attrErr    error
}

func (s *stubAPI) Publish(_ context.Context, in *awssns.PublishInput, _ ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
	s.publishIn = in
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	return &awssns.PublishOutput{}, nil
}

func (s *stubAPI) GetTopicAttributes(_ context.Context, _ *awssns.GetTopicAttributesInput, _ ...func(*awssns.Options)) (*awssns.GetTopicAttributesOutput, error) {
	if s.attrErr != nil {
		return nil, s.attrErr
	}
	return &awssns.GetTopicAttributesOutput{}, nil
}

func TestPublishSendsSubjectAndMessage(t *testing.T) {
	stub := &stubAPI{}
	client := NewClientWithAPI(stub, "arn:aws:sns:us-east-1:123456789012:stylelane-events")

	if err := client.Publish(context.Background(), "Low Stock Alert", "body"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if stub.publishIn == nil {
		t.Fatal("expected publish call")
	}
	if got := *stub.publishIn.Subject; got != "Low Stock Alert" {
		t.Errorf("subject = %q", got)
	}
	if got := *stub.publishIn.Message; got != "body" {
		t.Errorf("message = %q", got)
	}
	if got := *stub.publishIn.TopicArn; got != "arn:aws:sns:us-east-1:123456789012:stylelane-events" {
		t.Errorf("topic = %q", got)
	}
}

func TestPublishNoopWithoutTopic(t *testing.T) {
	stub := &stubAPI{publishErr: errors.New("should not be called")}
	client := NewClientWithAPI(stub, "")

	if err := client.Publish(context.Background(), "s", "m"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if stub.publishIn != nil {
		t.Fatal("publish should not reach the api when no topic is set")
	}
	if client.Enabled() {
		t.Error("client should report disabled")
	}
}

func TestPublishWrapsError(t *testing.T) {
	stub := &stubAPI{publishErr: errors.New("throttled")}
	client := NewClientWithAPI(stub, "arn:aws:sns:us-east-1:123456789012:t")

	if err := client.Publish(context.Background(), "s", "m"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPingChecksTopicAttributes(t *testing.T) {
	stub := &stubAPI{attrErr: errors.New("not found")}
	client := NewClientWithAPI(stub, "arn:aws:sns:us-east-1:123456789012:t")

	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure")
	}

	if err := NewClientWithAPI(stub, "").Ping(context.Background()); err != nil {
		t.Fatalf("disabled client ping should succeed: %v", err)
	}
}
