package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                     string
	MongoURI                 string
	MongoDBName              string
	JWTSecret                string
	JWTIssuer                string
	AppBaseURL               string
	FrontendURL              string
	CORSAllowedOrigins       []string
	RateLimitPerSecond       float64
	RedisURL                 string
	EventCacheTTL            time.Duration
	AccessTokenExpiry        time.Duration
	RefreshTokenExpiry       time.Duration
	PasswordResetTokenExpiry time.Duration
	Logging                  LoggingConfig
	Email                    EmailConfig
	Cloudinary               CloudinaryConfig
	Google                   GoogleConfig
}

type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

type EmailConfig struct {
	Provider     string // "smtp" or "resend"
	Host         string
	Port         string
	Username     string
	AppPassword  string
	From         string
	ResendAPIKey string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Enabled reports whether all Cloudinary credentials are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                     getEnv("PORT", "4000"),
		MongoURI:                 getEnv("MONGODB_URI", ""),
		MongoDBName:              getEnv("MONGODB_DB_NAME", ""),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTIssuer:                getEnv("JWT_ISSUER", "eventxpert"),
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:4000"),
		FrontendURL:              getEnv("FRONTEND_URL", "http://localhost:5173"),
		CORSAllowedOrigins:       getEnvAsList("CORS_ALLOWED_ORIGINS"),
		RateLimitPerSecond:       getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		RedisURL:                 getEnv("REDIS_URL", ""),
		EventCacheTTL:            time.Minute * time.Duration(getEnvAsInt("EVENT_CACHE_TTL_MINUTES", 10)),
		AccessTokenExpiry:        time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 43200)), // 30 days
		RefreshTokenExpiry:       time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)),      // 7 days
		PasswordResetTokenExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 10)),
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Email: EmailConfig{
			Provider:     strings.ToLower(getEnv("EMAIL_PROVIDER", "smtp")),
			Host:         getEnv("EMAIL_HOST", ""),
			Port:         getEnv("EMAIL_PORT", "587"),
			Username:     getEnv("EMAIL_USERNAME", ""),
			AppPassword:  getEnv("EMAIL_APP_PASSWORD", ""),
			From:         getEnv("EMAIL_FROM", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		},
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if c.MongoDBName == "" {
		missing = append(missing, "MONGODB_DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.Email.Provider != "smtp" && c.Email.Provider != "resend" {
		return fmt.Errorf("EMAIL_PROVIDER must be smtp or resend, got %q", c.Email.Provider)
	}
	return nil
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetFrontendURL returns the URL of the web client, used in emailed links.
func (c *Config) GetFrontendURL() string {
	return c.FrontendURL
}

func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(name string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(name, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
