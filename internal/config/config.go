package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	AuthModeSupabase = "supabase"
	AuthModeJWT      = "jwt"

	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	FrontendURL string         `yaml:"frontend_url" env:"FRONTEND_URL"`
	CORS        CORSConfig     `yaml:"cors"`
	Database    DatabaseConfig `yaml:"database"`
	Auth        AuthConfig     `yaml:"auth"`
	Mail        MailConfig     `yaml:"mail"`
	Log         LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
}

// CORSConfig lists the browser origins allowed to call the API.
// An origin is allowed when it is in AllowedOrigins or ends with AllowedOriginSuffix.
type CORSConfig struct {
	AllowedOrigins      []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	AllowedOriginSuffix string   `yaml:"allowed_origin_suffix" env:"CORS_ALLOWED_ORIGIN_SUFFIX"`
}

// DatabaseConfig contains PostgreSQL connection settings. URL wins over the discrete fields.
type DatabaseConfig struct {
	URL      string `yaml:"url" env:"DATABASE_URL"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
}

// AuthConfig selects how bearer tokens are exchanged for identities
type AuthConfig struct {
	Mode            string `yaml:"mode" env:"AUTH_MODE"` // "supabase" or "jwt"
	SupabaseURL     string `yaml:"supabase_url" env:"SUPABASE_URL"`
	SupabaseAnonKey string `yaml:"supabase_anon_key" env:"SUPABASE_ANON_KEY"`
	JWTSecret       string `yaml:"jwt_secret" env:"SUPABASE_JWT_SECRET"`
}

// MailConfig contains email delivery settings
type MailConfig struct {
	Provider       string `yaml:"provider" env:"MAIL_PROVIDER"` // "sendgrid" or "log"
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	FromEmail      string `yaml:"from_email" env:"MAIL_FROM_EMAIL"`
	FromName       string `yaml:"from_name" env:"MAIL_FROM_NAME"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" env:"LOG_FORMAT"` // "json" or "text"
}

// Load reads configuration from an optional YAML file, overlays environment
// variables, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// env-only deployments have no file
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.FrontendURL == "" {
		c.FrontendURL = "http://localhost:5173"
	}
	c.FrontendURL = strings.TrimRight(c.FrontendURL, "/")

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:5173", "https://estatespace.vercel.app"}
	}
	if c.CORS.AllowedOriginSuffix == "" {
		c.CORS.AllowedOriginSuffix = ".vercel.app"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "require"
	}

	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeSupabase
	}
	c.Auth.SupabaseURL = strings.TrimRight(c.Auth.SupabaseURL, "/")

	if c.Mail.Provider == "" {
		c.Mail.Provider = MailProviderLog
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "EstateSpace"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	u, err := url.Parse(c.FrontendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid frontend url: %q", c.FrontendURL)
	}

	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	switch c.Auth.Mode {
	case AuthModeSupabase:
		if c.Auth.SupabaseURL == "" {
			return fmt.Errorf("supabase url is required")
		}
		if c.Auth.SupabaseAnonKey == "" {
			return fmt.Errorf("supabase anon key is required")
		}
	case AuthModeJWT:
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("JWT secret must be at least 32 characters")
		}
	default:
		return fmt.Errorf("unsupported auth mode: %q", c.Auth.Mode)
	}

	switch c.Mail.Provider {
	case MailProviderSendGrid:
		if c.Mail.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid api key is required")
		}
		if c.Mail.FromEmail == "" {
			return fmt.Errorf("mail from address is required")
		}
	case MailProviderLog:
	default:
		return fmt.Errorf("unsupported mail provider: %q", c.Mail.Provider)
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
