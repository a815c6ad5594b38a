package sns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/logger"
)

// API is the slice of the SNS client the publisher depends on.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	GetTopicAttributes(ctx context.Context, params *sns.GetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error)
}

// Client publishes human-readable messages to the configured topic.
type Client struct {
	api      API
	topicARN string
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(context.Context) error
}

// NewClient creates an SNS client for the configured region and topic.
// An empty topic ARN produces a client whose publishes are no-ops so
// dev environments can run without the side channel.
func NewClient(ctx context.Context, awsCfg config.AWSConfig, cfg config.SNSConfig, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(awsCfg.Region) == "" {
		return nil, errors.New("aws region is required")
	}

	loaded, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsCfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	api := sns.NewFromConfig(loaded, func(o *sns.Options) {
		if endpoint := strings.TrimSpace(awsCfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})

	client := &Client{api: api, topicARN: strings.TrimSpace(cfg.TopicARN)}
	if logg != nil {
		if client.topicARN == "" {
			logg.Warn(ctx, "sns topic not configured, notifications disabled")
		} else {
			logg.Info(ctx, "sns client initialized")
		}
	}
	return client, nil
}

// NewClientWithAPI binds an existing API implementation, used by tests.
func NewClientWithAPI(api API, topicARN string) *Client {
	return &Client{api: api, topicARN: strings.TrimSpace(topicARN)}
}

// Enabled reports whether a destination topic was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.topicARN != ""
}

// Publish sends the subject and message to the configured topic.
func (c *Client) Publish(ctx context.Context, subject, message string) error {
	if c == nil || c.api == nil {
		return errors.New("sns client not initialized")
	}
	if !c.Enabled() {
		return nil
	}
	_, err := c.api.Publish(ctx, &sns.PublishInput{
		TopicArn: &c.topicARN,
		Subject:  &subject,
		Message:  &message,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", c.topicARN, err)
	}
	return nil
}

// Ping verifies the configured topic exists and is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.api == nil {
		return errors.New("sns client not initialized")
	}
	if !c.Enabled() {
		return nil
	}
	_, err := c.api.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{TopicArn: &c.topicARN})
	return err
}
