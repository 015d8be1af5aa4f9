// Package main is the entry point for the quantwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantwatch/quantwatch/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quantwatch",
		Short: "Quant firm activity monitor",
		Long:  `Quantwatch monitors quantitative finance firms for campus events, job postings, engineering blog posts, investor reports, and conference videos, and sends a digest of anything new.`,
	}

	cmd.AddCommand(runCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(testNotificationCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the YAML config file, the .env
// file, and environment variables.
func loadConfig(configFile, envFile string) (config.AppConfig, error) {
	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func addConfigFlags(cmd *cobra.Command, configFile, envFile *string) {
	cmd.Flags().StringVar(configFile, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
}
