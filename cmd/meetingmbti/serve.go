package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/config"
	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/server"
	"github.com/jonathan/meeting-mbti/internal/server/ratelimit"
)

func newServeCmd(app *cli) *cobra.Command {
	var (
		port       int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the survey, room, organization and feedback endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServerConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cmd.Context(), app, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&configPath, "config", "", "JSON config file; environment variables fill fields it leaves empty")
	return cmd
}

// loadServerConfig reads the server configuration from the environment,
// layered under the JSON file at path when one is given.
func loadServerConfig(path string) (*config.ServerConfig, error) {
	if path == "" {
		return config.NewServerConfig()
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	merged := fileCfg.MergeWithDefaults(*envCfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func runServe(ctx context.Context, app *cli, cfg *config.ServerConfig) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	store, err := db.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StorageDriver, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := server.New(server.Config{
		Port:              cfg.Port,
		Store:             store,
		Logger:            app.logger,
		JWTConfig:         jwtConfig,
		PasswordConfig:    passwordConfig,
		RateLimit:         ratelimit.LoadConfig(),
		Registry:          registry,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	app.logger.Info("starting meetingmbti",
		zap.Int("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver))
	return srv.Start()
}
