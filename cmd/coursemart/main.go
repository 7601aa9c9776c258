package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/playmixer/coursemart/internal/adapters/api/rest"
	"github.com/playmixer/coursemart/internal/adapters/gateway"
	"github.com/playmixer/coursemart/internal/adapters/logger"
	"github.com/playmixer/coursemart/internal/adapters/mailer"
	"github.com/playmixer/coursemart/internal/adapters/store"
	"github.com/playmixer/coursemart/internal/core/config"
	"github.com/playmixer/coursemart/internal/core/coursemart"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	gw, err := gateway.New(cfg.Gateway, gateway.Logger(lgr))
	if err != nil {
		return fmt.Errorf("failed initialize gateway client: %w", err)
	}

	mail := mailer.New(cfg.Mailer, mailer.Logger(lgr))

	mart := coursemart.New(cfg.Coursemart, storage, gw, mail, coursemart.Logger(lgr))

	server, err := rest.New(
		mart,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run(ctx)
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
