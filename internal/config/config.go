package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		TemplatesGlob string `yaml:"templates_glob" env:"SERVER_TEMPLATES_GLOB"`
	} `yaml:"server"`

	Catalog struct {
		Path string `yaml:"path" env:"CATALOG_PATH"`
	} `yaml:"catalog"`

	Session struct {
		Secret string `yaml:"secret" env:"SESSION_SECRET"`
	} `yaml:"session"`

	Tracing struct {
		Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
		ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
		SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_TRACES_SAMPLE_RATIO"`
		Insecure    bool    `yaml:"insecure" env:"OTEL_EXPORTER_OTLP_INSECURE"`
	} `yaml:"tracing"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// Defaults apply first, then the file if it exists, then the environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

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
	config.Server.TemplatesGlob = "web/templates/*.html"

	config.Catalog.Path = "course_catalog.json"

	config.Session.Secret = "secret"

	config.Tracing.Endpoint = "localhost:4317"
	config.Tracing.ServiceName = "course-catalog-service"
	config.Tracing.SampleRatio = 1.0
	config.Tracing.Insecure = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}
	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be between 0 and 1")
	}
	return nil
}
