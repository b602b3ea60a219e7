package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/core/store"
	"github.com/shopstream/storefront/internal/infrastructure/backend"
	"github.com/shopstream/storefront/internal/infrastructure/config"
	"github.com/shopstream/storefront/internal/infrastructure/storage"
	"github.com/shopstream/storefront/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront client: browse products, manage a cart, place orders",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired client: configuration, the two state containers
// and the backend port. The stores are constructed once per invocation
// and shared by reference.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	storage ports.Storage
	backend ports.Backend
	session *store.Session
	cart    *store.Cart
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	be := backend.NewClient(cfg.BaseURL(), cfg.RequestTimeout, log)

	return &app{
		cfg:     cfg,
		log:     log,
		storage: st,
		backend: be,
		session: store.NewSession(st, be, log),
		cart:    store.NewCart(st, log),
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (ports.Storage, error) {
	switch cfg.State.Backend {
	case "file", "":
		dir := cfg.State.Dir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve state dir: %w", err)
			}
			dir = filepath.Join(base, "storefront")
		}
		return storage.NewFile(dir)
	case "redis":
		return storage.NewRedis(ctx, storage.RedisConfig{
			Addr:   cfg.Redis.Addr,
			DB:     cfg.Redis.DB,
			Prefix: cfg.Redis.Prefix,
		})
	case "mongo":
		return storage.NewMongo(ctx, storage.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
}
