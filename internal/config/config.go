package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AWS      AWSConfig      `yaml:"aws"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// GetHost returns the server host, with ECS detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("APP_HOST"); host != "" {
		return host
	}
	return c.Host
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.GetHost(), c.Port)
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// URL overrides the composed DSN when set (DATABASE_URL).
	URL string `yaml:"url"`
}

// DSN returns the connection string for lib/pq.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name)
}

// AWSConfig holds S3 credentials and presigned URL settings
type AWSConfig struct {
	AccessKeyID          string `yaml:"access_key_id"`
	SecretAccessKey      string `yaml:"secret_access_key"`
	Region               string `yaml:"region"`
	Bucket               string `yaml:"bucket"`
	PresignExpirySeconds int    `yaml:"presign_expiry_seconds"`
}

// PresignExpiry returns the configured presigned URL lifetime as a duration
func (c AWSConfig) PresignExpiry() time.Duration {
	return time.Duration(c.PresignExpirySeconds) * time.Second
}

// HasStaticCredentials reports whether explicit AWS credentials were provided.
// When false the SDK's default credential chain is used.
func (c AWSConfig) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Load reads configuration from a YAML file and applies defaults.
// A missing file is not an error; defaults plus env overrides are enough
// to run the service.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "newsletter-postgres"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "newsletter_db"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = "postgres"
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.AWS.PresignExpirySeconds == 0 {
		cfg.AWS.PresignExpirySeconds = 3600
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars on ECS.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if host := os.Getenv("APP_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if debug := os.Getenv("APP_DEBUG"); debug != "" {
		cfg.Server.Debug = debug == "true" || debug == "1" || debug == "t"
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT %q: %w", port, err)
		}
		cfg.Database.Port = p
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		cfg.AWS.AccessKeyID = key
	}
	if secret := os.Getenv("AWS_SECRET_ACCESS_KEY"); secret != "" {
		cfg.AWS.SecretAccessKey = secret
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.AWS.Region = region
	}
	if bucket := os.Getenv("S3_BUCKET_NAME"); bucket != "" {
		cfg.AWS.Bucket = bucket
	}
	if exp := os.Getenv("PRESIGNED_URL_EXPIRATION"); exp != "" {
		seconds, err := strconv.Atoi(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid PRESIGNED_URL_EXPIRATION %q: %w", exp, err)
		}
		cfg.AWS.PresignExpirySeconds = seconds
	}

	return cfg, nil
}
