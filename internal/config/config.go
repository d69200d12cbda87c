package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the service reads from the environment.
// Lifecycle policy (TTL, quota) lives here so the invitation service
// never reads the environment ad hoc.
type Config struct {
	Port int    `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"dev"`

	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       uint   `env:"DB_PORT" envDefault:"5432"`
	DBUser       string `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName       string `env:"DB_NAME" envDefault:"onboarding"`
	DBSSLDisable bool   `env:"DB_SSL_MODE_DISABLE" envDefault:"true"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRES_IN" envDefault:"168h"`

	InvitationTTL  time.Duration `env:"INVITATION_EXPIRY" envDefault:"48h"`
	MaxInvitations int64         `env:"INVITATION_MAX_PER_CLIENT" envDefault:"5"`
	PortalBaseURL  string        `env:"PORTAL_BASE_URL" envDefault:"http://localhost:3000"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	EmailFrom      string `env:"EMAIL_FROM" envDefault:"noreply@richie.ai"`
	EmailFromName  string `env:"EMAIL_FROM_NAME" envDefault:"Richie AI"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.InvitationTTL <= 0 {
		return Config{}, fmt.Errorf("config: INVITATION_EXPIRY must be positive")
	}
	if cfg.MaxInvitations <= 0 {
		return Config{}, fmt.Errorf("config: INVITATION_MAX_PER_CLIENT must be positive")
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	if c.DBSSLDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}
