package config

import (
	"os"
	"strconv"
	"time"

	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Upload UploadConfig
	Demo   DemoConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port       string
	SessionTTL time.Duration
}

// ModelConfig holds the classifier artifact settings
type ModelConfig struct {
	// BundleFile is the fixed path of the serialized classifier bundle.
	// A missing file disables the Predict screen; it is not an error.
	BundleFile string
}

// UploadConfig holds dataset import limits
type UploadConfig struct {
	MaxBytes    int64
	PreviewRows int
}

// DemoConfig controls optional demo-data seeding at startup
type DemoConfig struct {
	Enabled bool
	Rows    int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8080"),
			SessionTTL: getEnvDurationOrDefault("SESSION_TTL", 2*time.Hour),
		},
		Model: ModelConfig{
			BundleFile: getEnvOrDefault("MODEL_FILE", "model.json"),
		},
		Upload: UploadConfig{
			MaxBytes:    int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
			PreviewRows: getEnvIntOrDefault("PREVIEW_ROWS", 5),
		},
		Demo: DemoConfig{
			Enabled: getEnvBoolOrDefault("DEMO_DATA", false),
			Rows:    getEnvIntOrDefault("DEMO_ROWS", 200),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Model.BundleFile == "" {
		return errors.ConfigInvalid("model bundle path is required")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("upload limit must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
