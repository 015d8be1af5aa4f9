package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/quantwatch/quantwatch"
	"github.com/quantwatch/quantwatch/infrastructure/api"
	v1 "github.com/quantwatch/quantwatch/infrastructure/api/v1"
	"github.com/quantwatch/quantwatch/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
		addr       string
		noSchedule bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the status API server",
		Long: `Start the HTTP status API server and, unless --no-schedule is given,
the daily monitoring schedule alongside it.

Endpoints:
  GET /health                      Health check
  GET /api/v1/firms                Tracked firms
  GET /api/v1/firms/with-events    Firms with stored events
  GET /api/v1/firms/{name}/events  One firm's event history
  GET /api/v1/search?q=            Title search across every content type
  GET /api/v1/scrapes?limit=       Recent scrape audit entries`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile, envFile, addr, noSchedule)
		},
	}

	addConfigFlags(cmd, &configFile, &envFile)
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: from config)")
	cmd.Flags().BoolVar(&noSchedule, "no-schedule", false, "Serve the API without running the monitor schedule")

	return cmd
}

func runServe(configFile, envFile, addr string, noSchedule bool) error {
	cfg, err := loadConfig(configFile, envFile)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.APIAddr()
	}
	logger := log.NewLogger(cfg)

	client, err := quantwatch.New(
		quantwatch.WithConfig(cfg),
		quantwatch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", "error", err)
		}
	}()

	server := api.NewServer(addr, logger)
	server.Router().Get("/health", healthHandler)
	server.Router().Route("/api/v1", func(r chi.Router) {
		v1.Mount(r, client.Search, logger)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	if !noSchedule {
		go func() {
			if err := client.Schedule.Run(ctx, cfg.ScheduleTime(), cfg.RunOnStart()); err != nil {
				logger.Error("schedule stopped", "error", err)
			}
		}()
	}

	logger.Info("starting quantwatch", "version", version, "addr", addr)
	if err := server.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
