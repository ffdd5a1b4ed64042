package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const DefaultFallbackImage = "https://via.placeholder.com/400x500/3B82F6/FFFFFF?text=Profile+Image"

type Config struct {
	Server   ServerConfig
	Site     SiteConfig
	Session  SessionConfig
	Database DatabaseConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Contact  ContactConfig
	Tracing  TracingConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string
	Mode        string
	CORSOrigins []string
}

type SiteConfig struct {
	MediaDir      string
	FallbackImage string
}

type SessionConfig struct {
	RedisURL string
	TTL      time.Duration
}

type DatabaseConfig struct {
	Path      string
	Retention time.Duration
}

type AdminConfig struct {
	Username string
	Password string
}

// Enabled reports whether admin credentials were configured.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type ContactConfig struct {
	RatePerHour int
	Burst       int
}

type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Mode:        getEnv("GIN_MODE", gin.DebugMode),
			CORSOrigins: getEnvAsList("CORS_ORIGINS"),
		},
		Site: SiteConfig{
			MediaDir:      getEnv("MEDIA_DIR", "./public"),
			FallbackImage: getEnv("FALLBACK_IMAGE_URL", DefaultFallbackImage),
		},
		Session: SessionConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Database: DatabaseConfig{
			Path:      getEnv("DB_PATH", "portfolio.db"),
			Retention: getEnvAsDuration("VISITOR_RETENTION", 365*24*time.Hour),
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port: getEnv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		Contact: ContactConfig{
			RatePerHour: getEnvAsInt("CONTACT_RATE_PER_HOUR", 5),
			Burst:       getEnvAsInt("CONTACT_BURST", 2),
		},
		Tracing: TracingConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "portfolio"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE %q is not one of debug, release, test", c.Server.Mode)
	}

	for _, o := range c.Server.CORSOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", o)
		}
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	if c.Contact.RatePerHour <= 0 || c.Contact.Burst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_HOUR and CONTACT_BURST must be positive")
	}

	if (c.Admin.Username == "") != (c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}

	return nil
}

// Release reports whether the server runs in gin release mode.
func (c *Config) Release() bool {
	return c.Server.Mode == gin.ReleaseMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
