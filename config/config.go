package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the application reads. The JWT secret and token
// lifetime are threaded into the credential service at construction; nothing
// else in the codebase touches the environment.
type Config struct {
	Port          string        `env:"PORT" envDefault:"3000"`
	PostgresURI   string        `env:"POSTGRESQL_URI,required,notEmpty"`
	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	TokenLifetime time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	CORSOrigin    string        `env:"CORS_ORIGIN" envDefault:"*"`
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
