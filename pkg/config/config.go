package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	AWS           AWSConfig
	Dynamo        DynamoConfig
	SNS           SNSConfig
	Session       SessionConfig
	Password      PasswordConfig
	Redis         RedisConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.SNS.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"STYLELANE_APP_ENV" default:"dev"`
	Port         string   `envconfig:"STYLELANE_APP_PORT" default:"5000"`
	LogLevel     string   `envconfig:"STYLELANE_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"STYLELANE_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"STYLELANE_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type AWSConfig struct {
	Region string `envconfig:"STYLELANE_AWS_REGION" default:"us-east-1"`
	// Endpoint overrides the service endpoint, e.g. a local DynamoDB at
	// http://localhost:8000. Empty means the real AWS endpoint.
	Endpoint string `envconfig:"STYLELANE_AWS_ENDPOINT"`
}

type DynamoConfig struct {
	TablePrefix    string        `envconfig:"STYLELANE_DYNAMO_TABLE_PREFIX" default:"stylelane"`
	RequestTimeout time.Duration `envconfig:"STYLELANE_DYNAMO_REQUEST_TIMEOUT" default:"10s"`
}

// Table returns the full table name for a collection suffix.
func (d DynamoConfig) Table(collection string) string {
	prefix := strings.TrimSpace(d.TablePrefix)
	if prefix == "" {
		prefix = "stylelane"
	}
	return prefix + "-" + collection
}

type SNSConfig struct {
	TopicARN string `envconfig:"STYLELANE_SNS_TOPIC_ARN"`
}

func (s SNSConfig) validate() error {
	arn := strings.TrimSpace(s.TopicARN)
	if arn == "" {
		// Publishing is optional in dev; the notifier becomes a no-op.
		return nil
	}
	if !strings.HasPrefix(arn, "arn:aws:sns:") {
		return fmt.Errorf("%s must be an SNS topic ARN", EnvSNSTopicARN)
	}
	return nil
}

const EnvSNSTopicARN = "STYLELANE_SNS_TOPIC_ARN"

type SessionConfig struct {
	Secret            string `envconfig:"STYLELANE_SESSION_SECRET" required:"true"`
	Issuer            string `envconfig:"STYLELANE_SESSION_ISSUER" default:"stylelane"`
	ExpirationMinutes int    `envconfig:"STYLELANE_SESSION_EXPIRATION_MINUTES" default:"720"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(s.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STYLELANE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STYLELANE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STYLELANE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STYLELANE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STYLELANE_ARGON_KEY_LEN" default:"32"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STYLELANE_REDIS_URL"`
	Password     string        `envconfig:"STYLELANE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STYLELANE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STYLELANE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STYLELANE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STYLELANE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STYLELANE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STYLELANE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis backend was configured at all.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"STYLELANE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"STYLELANE_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"STYLELANE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}
