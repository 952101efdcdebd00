package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/door-monitor/internal/config"
	"github.com/oshokin/door-monitor/internal/logger"
	"github.com/oshokin/door-monitor/internal/notify"
	"github.com/oshokin/door-monitor/internal/sensor"
)

// Options controls the door monitor process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// APIURL provides an optional sensor endpoint override.
	APIURL string
	// CheckIntervalSeconds provides an optional tick period override.
	CheckIntervalSeconds uint64
	// OpenTooLongSeconds provides an optional grace period override.
	OpenTooLongSeconds uint64
	// SingleNotification forces single-shot escalation mode.
	SingleNotification bool
	// TelegramTest sends TestMessage to the Telegram channel and exits.
	TelegramTest bool
	// TestMessage is the message body for TelegramTest.
	TestMessage string
}

// errTelegramNotConfigured is returned when the test mode has no channel to use.
var errTelegramNotConfigured = errors.New("telegram channel is not enabled in settings")

// Run loads configuration, wires the sensor and channels, and runs the
// monitor loop until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "door-monitor")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Command line arguments override config values.
	applyOverrides(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	channels := buildChannels(cfg)

	// Telegram test mode: send one message and exit.
	if opts.TelegramTest {
		return runTelegramTest(ctx, cfg, opts.TestMessage)
	}

	sampler, err := sensor.NewHTTPSampler(cfg.APIURL, sensor.WithCallTimeout(cfg.Timeout()))
	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}

	var beeper *notify.Beeper
	if cfg.Beep {
		beeper = notify.NewBeeper()
	}

	scheduler := NewScheduler(cfg.BackoffIntervals(), cfg.SingleNotification)
	engine := NewEngine(scheduler, cfg.OpenTooLongThreshold())
	loop := NewLoop(sampler, engine, channels, beeper, cfg.CheckInterval())

	logger.InfoKV(ctx, "Door monitor starting",
		"api_url", cfg.APIURL,
		"check_interval", cfg.CheckInterval().String(),
		"open_too_long_threshold", cfg.OpenTooLongThreshold().String(),
		"single_notification", cfg.SingleNotification,
		"channels", channelNames(channels))

	return loop.Run(ctx)
}

// applyOverrides copies non-zero command line options over file settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	if opts.CheckIntervalSeconds > 0 {
		cfg.CheckIntervalSeconds = opts.CheckIntervalSeconds
	}

	if opts.OpenTooLongSeconds > 0 {
		cfg.OpenTooLongSeconds = opts.OpenTooLongSeconds
	}

	if opts.SingleNotification {
		cfg.SingleNotification = true
	}
}

// buildChannels constructs every enabled notification channel.
// A disabled channel is simply absent, not an error.
func buildChannels(cfg *config.Config) []notify.Channel {
	var channels []notify.Channel

	if cfg.SMS.Enabled {
		channels = append(channels, notify.NewSMS(cfg.SMS, notify.WithSMSCallTimeout(cfg.Timeout())))
	}

	if cfg.Telegram.Enabled {
		channels = append(channels, notify.NewTelegram(cfg.Telegram, notify.WithTelegramCallTimeout(cfg.Timeout())))
	}

	return channels
}

// channelNames lists channel identifiers for the startup log line.
func channelNames(channels []notify.Channel) []string {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name())
	}

	return names
}

// runTelegramTest delivers one test message through the Telegram channel.
func runTelegramTest(ctx context.Context, cfg *config.Config, message string) error {
	if !cfg.Telegram.Enabled {
		return errTelegramNotConfigured
	}

	if message == "" {
		message = "Door monitor test message"
	}

	tg := notify.NewTelegram(cfg.Telegram, notify.WithTelegramCallTimeout(cfg.Timeout()))
	if err := tg.Send(ctx, message); err != nil {
		return fmt.Errorf("send test message: %w", err)
	}

	logger.InfoKV(ctx, "Test message sent", "message", message)

	return nil
}
