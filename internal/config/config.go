package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Store struct {
		// Driver selects the document/auth/object store backends:
		// "firebase" uses the real services, "memory" runs everything
		// in-process (no credentials required).
		Driver string `yaml:"driver" env:"STORE_DRIVER"`
	} `yaml:"store"`

	Firebase struct {
		ProjectID       string `yaml:"project_id" env:"FIREBASE_PROJECT_ID"`
		CredentialsFile string `yaml:"credentials_file" env:"FIREBASE_CREDENTIALS_FILE"`
		StorageBucket   string `yaml:"storage_bucket" env:"FIREBASE_STORAGE_BUCKET"`
	} `yaml:"firebase"`

	Auth struct {
		// EmailDomain is appended to registration numbers to derive login emails.
		EmailDomain string `yaml:"email_domain" env:"AUTH_EMAIL_DOMAIN"`
		// InitialPassword is the password assigned to admin-created accounts.
		InitialPassword string `yaml:"initial_password" env:"AUTH_INITIAL_PASSWORD"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Store.Driver = "firebase"

	config.Auth.EmailDomain = "college.edu"
	config.Auth.InitialPassword = "campus"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Store.Driver) {
	case "firebase":
		if config.Firebase.ProjectID == "" {
			return fmt.Errorf("firebase project ID is required")
		}
		if config.Firebase.StorageBucket == "" {
			return fmt.Errorf("firebase storage bucket is required")
		}
	case "memory":
		// Nothing else required; everything runs in-process.
	default:
		return fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}

	if config.Auth.EmailDomain == "" {
		return fmt.Errorf("auth email domain is required")
	}
	if config.Auth.InitialPassword == "" {
		return fmt.Errorf("auth initial password is required")
	}

	return nil
}

// UseMemoryStores reports whether the in-process store backends are selected.
func (c *Config) UseMemoryStores() bool {
	return strings.ToLower(c.Store.Driver) == "memory"
}
