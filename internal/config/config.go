package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
// One config file drives all four binaries; each service reads its own
// port and the gateway additionally reads the upstream base URLs.
type Config struct {
	Services struct {
		StudentPort string `yaml:"student_port" env:"STUDENT_SERVICE_PORT"`
		CoursePort  string `yaml:"course_port" env:"COURSE_SERVICE_PORT"`
		GatewayPort string `yaml:"gateway_port" env:"GATEWAY_PORT"`
		GraphQLPort string `yaml:"graphql_port" env:"GRAPHQL_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"services"`

	Gateway struct {
		StudentServiceURL string `yaml:"student_service_url" env:"STUDENT_SERVICE_URL"`
		CourseServiceURL  string `yaml:"course_service_url" env:"COURSE_SERVICE_URL"`
		RequestTimeout    string `yaml:"request_timeout" env:"GATEWAY_REQUEST_TIMEOUT"`
	} `yaml:"gateway"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

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

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Service defaults; ports mirror the original deployment layout
	config.Services.StudentPort = "3001"
	config.Services.CoursePort = "3002"
	config.Services.GatewayPort = "4000"
	config.Services.GraphQLPort = "4001"
	config.Services.Mode = "development"

	// Gateway defaults
	config.Gateway.StudentServiceURL = "http://localhost:3001"
	config.Gateway.CourseServiceURL = "http://localhost:3002"
	config.Gateway.RequestTimeout = "10s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "edurecords"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	for _, port := range []string{
		config.Services.StudentPort,
		config.Services.CoursePort,
		config.Services.GatewayPort,
		config.Services.GraphQLPort,
	} {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("invalid service port %q: %w", port, err)
		}
	}

	if !strings.HasPrefix(config.Gateway.StudentServiceURL, "http") {
		return fmt.Errorf("invalid student service URL: %s", config.Gateway.StudentServiceURL)
	}
	if !strings.HasPrefix(config.Gateway.CourseServiceURL, "http") {
		return fmt.Errorf("invalid course service URL: %s", config.Gateway.CourseServiceURL)
	}

	if _, err := time.ParseDuration(config.Gateway.RequestTimeout); err != nil {
		return fmt.Errorf("invalid gateway request timeout: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GatewayRequestTimeout returns the parsed upstream request timeout.
func (c *Config) GatewayRequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gateway.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
