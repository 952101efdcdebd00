package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/door-monitor/internal/config"
	"github.com/oshokin/door-monitor/internal/logger"
	"github.com/oshokin/door-monitor/internal/service/monitor"
	"github.com/oshokin/door-monitor/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// apiURL overrides the sensor endpoint from the configuration file.
	apiURL string
	// checkIntervalSeconds overrides the tick period.
	checkIntervalSeconds uint64
	// openTooLongSeconds overrides the escalation grace period.
	openTooLongSeconds uint64
	// singleNotification forces one escalation per open episode.
	singleNotification bool
	// logLevel selects the logging verbosity.
	logLevel string
	// telegramTest sends a test message to the Telegram channel and exits.
	telegramTest bool
	// testMessage is the message body used by telegramTest.
	testMessage string

	// rootCmd represents the base command for running the door monitor.
	rootCmd = &cobra.Command{
		Use:   "door-monitor",
		Short: "Monitor a door sensor and notify when it stays open.",
		Long: `Background service that polls a door sensor and sends notifications.

Polls the sensor HTTP endpoint on a fixed interval and tracks how long the
door has been open or closed. A state change triggers an immediate
notification; a door left open past the threshold starts a progressive
escalation sequence (5, 15, 30, 60 minutes, then hourly) over the enabled
channels (SMS via voip.ms, Telegram). Command line flags override values
from the configuration file.

This runs until interrupted and recovers from sensor or channel failures by
simply retrying on the next tick.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			monitorOptions := &monitor.Options{
				ConfigPath:           configPath,
				APIURL:               apiURL,
				CheckIntervalSeconds: checkIntervalSeconds,
				OpenTooLongSeconds:   openTooLongSeconds,
				SingleNotification:   singleNotification,
				TelegramTest:         telegramTest,
				TestMessage:          testMessage,
			}

			return monitor.Run(ctx, monitorOptions)
		},
	}
)

// Execute runs the door-monitor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "door sensor API URL (overrides configuration)")
	rootCmd.Flags().Uint64Var(&checkIntervalSeconds, "check-interval-seconds", 0, "seconds between sensor polls (overrides configuration)")
	rootCmd.Flags().Uint64Var(&openTooLongSeconds, "open-too-long-seconds", 0, "seconds before the first open-too-long alert (overrides configuration)")
	rootCmd.Flags().BoolVar(&singleNotification, "single-notification", false, "send one alert per open episode instead of progressive reminders")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "logging level: debug, info, warn, error or fatal")

	// Telegram test mode for verifying channel credentials.
	rootCmd.Flags().BoolVar(&telegramTest, "telegram-test", false, "send a test message to the Telegram channel and exit")
	rootCmd.Flags().StringVar(&testMessage, "test-message", "", "message body for --telegram-test")
}
