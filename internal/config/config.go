package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Services ServicesConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Server   ServerConfig
	Engine   EngineConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey    string
	ResendAPIKey       string
	DefaultEmailSender string
	IdentityServiceURL string
	WebAppURI          string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
	EventWorkers  int // Number of workers for trigger event processing
}

// RedisConfig holds Redis connection settings for rate limiting
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// BonusTerms is a default bonus amount and type for one participant role
type BonusTerms struct {
	Amount float64
	Type   string
}

// EngineConfig holds the referral engine's tunable defaults. It is built
// once at startup and passed into the processors at construction so tests
// can swap defaults without touching the process environment.
type EngineConfig struct {
	// ReferrerBonusDefaults maps owner role -> default bonus terms used
	// when a code is issued without explicit terms.
	ReferrerBonusDefaults map[string]BonusTerms
	// RefereeBonusDefaults maps referee role -> the welcome bonus granted
	// on referral completion.
	RefereeBonusDefaults map[string]BonusTerms

	DefaultMaxUsage       int
	AllowMultipleCodes    bool
	CodeIssueLimit        int           // max codes issued per owner per window
	CodeIssueWindow       time.Duration
	ReferralExpiryWindow  time.Duration
	RewardExpiryWindow    time.Duration
	FirstTimeBonusAmount  float64
	Currency              string

	// MilestoneThresholds must be ascending; MilestoneAmounts is keyed by
	// threshold.
	MilestoneThresholds []int
	MilestoneAmounts    map[int]float64
}

// DefaultEngineConfig returns the engine defaults used in production and as
// a baseline in tests.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ReferrerBonusDefaults: map[string]BonusTerms{
			"customer":   {Amount: 10.00, Type: "credit"},
			"driver":     {Amount: 25.00, Type: "cash"},
			"restaurant": {Amount: 50.00, Type: "credit"},
		},
		RefereeBonusDefaults: map[string]BonusTerms{
			"customer":   {Amount: 10.00, Type: "credit"},
			"driver":     {Amount: 15.00, Type: "cash"},
			"restaurant": {Amount: 25.00, Type: "credit"},
		},
		DefaultMaxUsage:      50,
		AllowMultipleCodes:   false,
		CodeIssueLimit:       5,
		CodeIssueWindow:      24 * time.Hour,
		ReferralExpiryWindow: 30 * 24 * time.Hour,
		RewardExpiryWindow:   30 * 24 * time.Hour,
		FirstTimeBonusAmount: 5.00,
		Currency:             "USD",
		MilestoneThresholds:  []int{5, 10, 25, 50, 100},
		MilestoneAmounts: map[int]float64{
			5:   25.00,
			10:  50.00,
			25:  100.00,
			50:  250.00,
			100: 500.00,
		},
	}
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.IdentityServiceURL, err = requireEnv("IDENTITY_SERVICE_URL"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "business-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "referral-engine")

	eventWorkers := getEnvWithDefault("EVENT_WORKERS", "10")
	cfg.Kafka.EventWorkers, err = strconv.Atoi(eventWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to parse EVENT_WORKERS: %w", err)
	}

	// Redis configuration (optional; rate limiting falls back to Postgres)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
		redisPort := getEnvWithDefault("REDIS_PORT", "6379")
		cfg.Redis.Port, err = strconv.Atoi(redisPort)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		redisDB := getEnvWithDefault("REDIS_DB", "0")
		cfg.Redis.DB, err = strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	// Engine defaults, with env overrides for the windows
	cfg.Engine = DefaultEngineConfig()
	if v := os.Getenv("REFERRAL_EXPIRY_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REFERRAL_EXPIRY_DAYS: %w", err)
		}
		cfg.Engine.ReferralExpiryWindow = time.Duration(days) * 24 * time.Hour
	}
	if v := os.Getenv("REWARD_EXPIRY_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REWARD_EXPIRY_DAYS: %w", err)
		}
		cfg.Engine.RewardExpiryWindow = time.Duration(days) * 24 * time.Hour
	}
	if getEnvWithDefault("ALLOW_MULTIPLE_CODES", "false") == "true" {
		cfg.Engine.AllowMultipleCodes = true
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
