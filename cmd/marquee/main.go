package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marquee-app/marquee"
	"github.com/marquee-app/marquee/config"
	"github.com/marquee-app/marquee/core"
	"github.com/marquee-app/marquee/omdb"
	"github.com/marquee-app/marquee/server"
	"github.com/marquee-app/marquee/store/file"
	"github.com/marquee-app/marquee/store/memory"
	"github.com/marquee-app/marquee/store/postgres"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	addr := flag.String("addr", "", "listen address override (host:port)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config file not loaded, using defaults", "path", *configPath, "err", err)
		cfg = config.Default()
	}

	if cfg.OMDB.APIKey == "" {
		logger.Warn("no OMDb API key configured; proxy requests will fail upstream")
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open store", "driver", cfg.Storage.Driver, "err", err)
	}

	identity, err := marquee.New(marquee.Config{Store: store})
	if err != nil {
		logger.Fatal("failed to build identity module", "err", err)
	}

	srv := server.New(server.Config{
		Identity: identity,
		Movies:   omdb.NewClient(cfg.OMDB.BaseURL, cfg.OMDB.APIKey, nil),
		Logger:   logger,
	})

	listenAddr := cfg.Addr()
	if *addr != "" {
		listenAddr = *addr
	}

	logger.Info("listening", "addr", listenAddr, "storage", cfg.Storage.Driver)
	if err := srv.Listen(listenAddr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func openStore(cfg *config.Config) (core.Store, error) {
	switch cfg.Storage.Driver {
	case "", "memory":
		return memory.New(), nil

	case "file":
		return file.New(cfg.Storage.Path)

	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create pool: %w", err)
		}
		return postgres.New(pool)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
