package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	LockerMemory = "memory"
	LockerRedis  = "redis"
)

type AWSOptions struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// DynamoDBEndpoint points the client at DynamoDB Local, e.g. http://dynamodb:8000.
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable      string `env:"QUOTES_TABLE" envDefault:"quotes"`
}

type RedisOptions struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL  time.Duration `env:"QUOTE_LOCK_TTL" envDefault:"10s"`
	LockWait time.Duration `env:"QUOTE_LOCK_WAIT" envDefault:"3s"`
}

type NotificationOptions struct {
	QueueSize   int           `env:"NOTIFICATION_QUEUE_SIZE" envDefault:"256"`
	Workers     int           `env:"NOTIFICATION_WORKERS" envDefault:"2"`
	SendTimeout time.Duration `env:"NOTIFICATION_SEND_TIMEOUT" envDefault:"10s"`
	AdminEmail  string        `env:"ADMIN_ALERT_EMAIL" envDefault:"offers@localhost"`
}

type VehicleDataOptions struct {
	BaseURL string        `env:"VPIC_BASE_URL" envDefault:"https://vpic.nhtsa.dot.gov/api/vehicles"`
	Timeout time.Duration `env:"VPIC_TIMEOUT" envDefault:"5s"`
}

type HTTPOptions struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	AdminAPIKey    string   `env:"ADMIN_API_KEY"`
	RateLimitRPM   int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

type Configuration struct {
	AWS          AWSOptions
	Redis        RedisOptions
	Notification NotificationOptions
	VehicleData  VehicleDataOptions
	HTTP         HTTPOptions

	Environment   string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	LockDriver    string `env:"LOCK_DRIVER" envDefault:"memory"`
	// QuoteValidityDays is how long a submitted quote can be acted upon.
	QuoteValidityDays int    `env:"QUOTE_VALIDITY_DAYS" envDefault:"7"`
	BusinessTimeZone  string `env:"BUSINESS_TIME_ZONE" envDefault:"America/New_York"`
	MetricsEnabled    bool   `env:"METRICS_ENABLED" envDefault:"true"`

	location *time.Location
}

// Load reads the configuration from the environment. A .env file, when
// present, is loaded by the caller through godotenv/autoload.
func Load() (*Configuration, error) {
	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) validate() error {
	c.StorageDriver = strings.ToLower(c.StorageDriver)
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	c.LockDriver = strings.ToLower(c.LockDriver)
	switch c.LockDriver {
	case LockerMemory, LockerRedis:
	default:
		return fmt.Errorf("unknown LOCK_DRIVER %q", c.LockDriver)
	}
	if c.QuoteValidityDays <= 0 {
		return fmt.Errorf("QUOTE_VALIDITY_DAYS must be positive")
	}
	if c.Notification.QueueSize <= 0 || c.Notification.Workers <= 0 {
		return fmt.Errorf("notification queue size and workers must be positive")
	}
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return fmt.Errorf("invalid BUSINESS_TIME_ZONE: %w", err)
	}
	c.location = loc
	return nil
}

func (c *Configuration) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Location is the business time zone used for pickup date checks.
func (c *Configuration) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Configuration) QuoteValidity() time.Duration {
	return time.Duration(c.QuoteValidityDays) * 24 * time.Hour
}

// Clock returns the current time in the business time zone.
func (c *Configuration) Clock() func() time.Time {
	loc := c.Location()
	return func() time.Time { return time.Now().In(loc) }
}
