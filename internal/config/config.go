package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Members API configuration
	MembersAPIBaseURL    string `mapstructure:"MEMBERS_API_BASE_URL"`
	MembersAPITimeoutSec int    `mapstructure:"MEMBERS_API_TIMEOUT_SEC"`

	// Business rules
	MembersLimit int `mapstructure:"MEMBERS_LIMIT"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Members API defaults
	v.SetDefault("MEMBERS_API_BASE_URL", "http://localhost:3000")
	v.SetDefault("MEMBERS_API_TIMEOUT_SEC", 15)

	v.SetDefault("MEMBERS_LIMIT", 2)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:8080", "http://localhost:5173"})
}

func validate(config *Config) error {
	if strings.TrimSpace(config.MembersAPIBaseURL) == "" {
		return fmt.Errorf("MEMBERS_API_BASE_URL is required")
	}

	if config.MembersLimit < 0 {
		return fmt.Errorf("MEMBERS_LIMIT must not be negative")
	}

	if config.MembersAPITimeoutSec <= 0 {
		return fmt.Errorf("MEMBERS_API_TIMEOUT_SEC must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
