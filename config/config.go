package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port         string        `envconfig:"PORT" default:"3000"`
	DatabasePath string        `envconfig:"DATABASE_PATH" default:"database.db"`
	JWTSecret    string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"72h"`
	OtpTTL       time.Duration `envconfig:"OTP_TTL" default:"10m"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
