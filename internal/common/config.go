package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	LLM       LLMConfig
	Storage   StorageConfig
	Assistant AssistantConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// LLMConfig holds extraction-oracle configuration
type LLMConfig struct {
	Model      string
	APIKey     string
	BaseURL    string
	MaxRetries int
	RetryDelay time.Duration
}

// StorageConfig holds object-storage configuration for question images
type StorageConfig struct {
	Bucket    string
	ProjectID string
}

// AssistantConfig holds the pre-provisioned assistant used by the chat feature
type AssistantConfig struct {
	AssistantID string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is applied first when present (local development).
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		LLM: LLMConfig{
			Model:      getEnv("OPENAI_MODEL", "gpt-4o"),
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			BaseURL:    getEnv("OPENAI_BASE_URL", ""),
			MaxRetries: getEnvAsInt("ORACLE_MAX_RETRIES", 3),
			RetryDelay: getEnvAsDuration("ORACLE_RETRY_DELAY", 5*time.Second),
		},
		Storage: StorageConfig{
			Bucket:    getEnv("QUESTION_IMAGES_BUCKET", ""),
			ProjectID: getEnv("GCP_PROJECT_ID", ""),
		},
		Assistant: AssistantConfig{
			AssistantID: getEnv("ASSISTANT_ID", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate reports missing required credentials across every area. Commands
// that use only a subset call the area validators instead.
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if err := c.ValidateLLM(); err != nil {
		return err
	}
	if err := c.ValidateStorage(); err != nil {
		return err
	}
	return c.ValidateAssistant()
}

func (c *Config) ValidateDatabase() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	return nil
}

func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	return nil
}

func (c *Config) ValidateStorage() error {
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "QUESTION_IMAGES_BUCKET is required", ErrInvalidInput)
	}
	return nil
}

func (c *Config) ValidateAssistant() error {
	if c.Assistant.AssistantID == "" {
		return NewAppError("CONFIG_ERROR", "ASSISTANT_ID is required", ErrInvalidInput)
	}
	return nil
}
