package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/playmixer/coursemart/internal/adapters/api/rest"
	"github.com/playmixer/coursemart/internal/adapters/gateway"
	"github.com/playmixer/coursemart/internal/adapters/mailer"
	"github.com/playmixer/coursemart/internal/adapters/store"
	"github.com/playmixer/coursemart/internal/adapters/store/database"
	"github.com/playmixer/coursemart/internal/core/coursemart"
)

type Config struct {
	Rest       *rest.Config
	Store      *store.Config
	Gateway    *gateway.Config
	Mailer     *mailer.Config
	Coursemart *coursemart.Config
	Secret     string `env:"SECRET_KEY" envDefault:"secret_key"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath    string `env:"LOG_PATH"`
}

func Init() (*Config, error) {
	cfg := &Config{
		Rest: &rest.Config{},
		Store: &store.Config{
			Database: &database.Config{},
		},
		Gateway:    &gateway.Config{},
		Mailer:     &mailer.Config{},
		Coursemart: &coursemart.Config{},
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed load enviorements from file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("failed parse env: %w", err)
	}

	flag.StringVar(&cfg.Rest.Address, "a", cfg.Rest.Address, "address listen")
	flag.StringVar(&cfg.Store.Database.DSN, "d", cfg.Store.Database.DSN, "database dsn")
	flag.StringVar(&cfg.Gateway.URL, "g", cfg.Gateway.URL, "payment gateway url")
	flag.Parse()

	return cfg, nil
}
