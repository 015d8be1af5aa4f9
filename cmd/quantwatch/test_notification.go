package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantwatch/quantwatch"
	"github.com/quantwatch/quantwatch/internal/log"
)

func testNotificationCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:   "test-notification",
		Short: "Send a test notification",
		Long: `Send a test notification through the configured delivery channel.

With complete SMTP settings this sends a test email; otherwise the
notification is printed to the console.`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := client.Notifier.SendTest(cmd.Context()); err != nil {
				return fmt.Errorf("send test notification: %w", err)
			}
			fmt.Println("test notification sent")
			return nil
		},
	}

	addConfigFlags(cmd, &configFile, &envFile)

	return cmd
}
