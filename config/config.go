package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process needs, parsed once at startup and
// passed by reference. External provider credentials live here so clients
// are constructed explicitly instead of lazily mutating module state.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	AWSRegion string `env:"AWS_REGION" envDefault:"ap-south-1"`

	JWTSecret     string        `env:"JWT_SECRET,required"`
	AuthTokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"720h"`
	EmailTokenTTL time.Duration `env:"EMAIL_TOKEN_TTL" envDefault:"168h"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"https://indiecon.co"`

	SendgridAPIKey string `env:"SENDGRID_API_KEY,required"`
	SenderEmail    string `env:"SENDER_EMAIL" envDefault:"indiecon.co@gmail.com"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID,required"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET,required"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL,required"`

	// Bound on each outbound provider call; a timeout is treated as failure.
	ExternalCallTimeout time.Duration `env:"EXTERNAL_CALL_TIMEOUT" envDefault:"10s"`
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
