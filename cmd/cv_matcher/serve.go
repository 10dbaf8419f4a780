package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/db"
	"github.com/jonathan/cv-matcher/internal/server"
)

func newServeCmd(rt *appState) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing the catalog and the analysis endpoints.

When a database URL is configured (database_url, DATABASE_URL or CVM_DATABASE_URL),
every analysis is stored in PostgreSQL and the /analyses endpoints are enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				rt.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, rt)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (default from config)")
	return cmd
}

func runServe(ctx context.Context, rt *appState) error {
	cfg := rt.cfg
	srvCfg := server.Config{
		Port:           cfg.Server.Port,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RateLimit:      cfg.Server.RateLimit,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Workers:        cfg.Batch.Workers,
	}

	if cfg.DatabaseURL == "" {
		rt.logger.Info("no database configured, analyses will not be stored")
		return server.New(srvCfg, rt.engine, nil, rt.logger).Start(ctx)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}
	rt.logger.Info("database ready", zap.String("store", "postgres"))

	return server.New(srvCfg, rt.engine, database, rt.logger).Start(ctx)
}
