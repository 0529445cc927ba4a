package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTL bounds the lifetime of issued bearer tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=60m"`
	// ResetTokenTTL bounds how long a password-reset token stays usable.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=60m"`

	// Seed credentials for the first-run admin account.
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@repairdesk.local"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD, default=change-me-now"`
}

type DatabaseConfig struct {
	Path string `env:"DB_PATH, default=data/repairdesk.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=25"`
	From     string `env:"SMTP_FROM, default=no-reply@repairdesk.local"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
