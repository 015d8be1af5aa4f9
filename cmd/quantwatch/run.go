package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantwatch/quantwatch"
	"github.com/quantwatch/quantwatch/internal/log"
)

func runCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
		once       bool
		at         string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the monitor",
		Long: `Run the monitor: scrape every enabled source, store anything new,
and send one digest per content type.

By default the monitor runs daily at the configured schedule time.
With --once it runs a single pass and exits.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. YAML config file (if --config specified)
  3. .env file (if --env-file specified or .env exists in current directory)
  4. Environment variables

Environment variables:
  DATA_DIR           Data directory (default: ~/.quantwatch)
  DATABASE_URL       Database URL (default: sqlite:///{data_dir}/quantwatch.db)
  LOG_LEVEL          Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT         Log format: pretty, json (default: pretty)
  SCHEDULE_TIME      Daily run time HH:MM (default: 20:00)
  RUN_ON_START       Also run immediately when scheduled (default: false)

  EMAIL_SMTP_SERVER  SMTP server for email digests
  EMAIL_SMTP_PORT    SMTP port (default: 587)
  EMAIL_SENDER       Digest sender address
  EMAIL_PASSWORD     SMTP password
  EMAIL_RECIPIENT    Digest recipient address

  SCRAPE_EVENTS      Scrape event sources (default: true)
  SCRAPE_JOBS        Scrape careers pages (default: true)
  SCRAPE_BLOGS       Scrape engineering blogs (default: true)
  SCRAPE_REPORTS     Scrape investor reports (default: true)
  SCRAPE_VIDEOS      Scrape video channels (default: true)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(configFile, envFile, once, at)
		},
	}

	addConfigFlags(cmd, &configFile, &envFile)
	cmd.Flags().BoolVar(&once, "once", false, "Run a single pass and exit")
	cmd.Flags().StringVar(&at, "at", "", "Daily run time HH:MM (default: from config)")

	return cmd
}

func runRun(configFile, envFile string, once bool, at string) error {
	cfg, err := loadConfig(configFile, envFile)
	if err != nil {
		return err
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if once {
		summary := client.Monitor.Run(ctx)
		fmt.Printf("run %s finished in %s: %d events, %d jobs, %d blog posts, %d reports, %d videos; %d notified\n",
			summary.RunID, summary.Duration.Round(time.Millisecond),
			summary.Events, summary.Jobs, summary.BlogPosts, summary.Reports, summary.Videos,
			summary.Notified.Total())
		return nil
	}

	if at == "" {
		at = cfg.ScheduleTime()
	}
	return client.Schedule.Run(ctx, at, cfg.RunOnStart())
}
