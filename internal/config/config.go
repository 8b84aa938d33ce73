package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	ServiceName string
	HTTPPort    int
	LogLevel    string
	Store       StoreConfig
	DynamoDB    DynamoDBConfig
	Analysis    AnalysisConfig
	Images      ImageConfig
	RabbitMQ    RabbitMQConfig
}

// StoreConfig selects the Reading Store backend
type StoreConfig struct {
	Driver      string
	DatabaseURL string
	AutoMigrate bool
}

// DynamoDBConfig holds the AWS client and table settings
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	MeasuresTable   string
	MonthLocksTable string
}

// AnalysisConfig holds the image analysis gateway settings
type AnalysisConfig struct {
	APIKey   string
	Model    string
	Prompt   string
	Timeout  time.Duration
	MockMode bool
}

type ImageConfig struct {
	BaseDir  string
	MaxBytes int64
}

// RabbitMQConfig holds the event publisher settings. An empty URL disables events.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "measure-service"),
		HTTPPort:    getEnvAsInt("HTTP_PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", StoreDriverDynamoDB)),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
			MeasuresTable:   getEnv("MEASURES_TABLE", "measures"),
			MonthLocksTable: getEnv("MEASURE_MONTH_LOCKS_TABLE", "measure_month_locks"),
		},
		Analysis: AnalysisConfig{
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Model:    getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
			Prompt:   getEnv("ANALYSIS_PROMPT", ""),
			Timeout:  getEnvAsDuration("ANALYSIS_TIMEOUT", 30*time.Second),
			MockMode: getEnvAsBool("ANALYSIS_GATEWAY_MOCK", false),
		},
		Images: ImageConfig{
			BaseDir:  getEnv("IMAGE_BASE_DIR", ""),
			MaxBytes: int64(getEnvAsInt("IMAGE_MAX_BYTES", 10<<20)),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "measures.events"),
		},
	}

	switch cfg.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	case StoreDriverPostgres:
		if cfg.Store.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (expected dynamodb, postgres or memory)", cfg.Store.Driver)
	}
	if !cfg.Analysis.MockMode && cfg.Analysis.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required unless ANALYSIS_GATEWAY_MOCK is enabled")
	}
	if cfg.HTTPPort <= 0 {
		return nil, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTPPort)
	}

	return cfg, nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return defaultValue
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	// bare numbers are seconds
	if secs, err := strconv.Atoi(valueStr); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
