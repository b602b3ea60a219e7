package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopstream/storefront/internal/infrastructure/config"
	"github.com/shopstream/storefront/internal/stub"
	"github.com/shopstream/storefront/pkg/logger"
)

func init() {
	rootCmd.AddCommand(stubCmd)
}

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run the embedded development backend",
	Long: `Serves the backend REST contract on a local port with a seeded
catalog and an admin account (admin@storefront.dev / admin). Intended
for development only; the real backend is an external service.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

		e := stub.NewServer(stub.Config{
			JWTSecret: cfg.Stub.JWTSecret,
			SeedAdmin: true,
			Metrics:   true,
		}, log)

		addr := ":" + cfg.Stub.Port
		fmt.Printf("Stub backend listening on %s\n", addr)
		return e.Start(addr)
	},
}
