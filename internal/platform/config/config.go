package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Config holds server configuration read from the environment.
type Config struct {
	Port             string        `env:"PORT"               envDefault:"8080"`
	ProfilesDir      string        `env:"PROFILES_DIR"       envDefault:"profiles"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"10s"`
	RequestBodyLimit int64         `env:"REQUEST_BODY_LIMIT" envDefault:"1048576"`
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads an optional dotenv file, then parses the environment.
// Variables already present in the environment win over the file.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port == "":
		return errors.New("PORT must not be empty")
	case c.ProfilesDir == "":
		return errors.New("PROFILES_DIR must not be empty")
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	case c.RequestBodyLimit <= 0:
		return fmt.Errorf("REQUEST_BODY_LIMIT must be positive, got %d", c.RequestBodyLimit)
	}
	return nil
}
