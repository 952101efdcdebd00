package monitor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/door-monitor/internal/config"
)

// TestApplyOverrides copies non-zero command line options over file settings.
func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		APIURL:               "http://sensor.local/status",
		CheckIntervalSeconds: 5,
		OpenTooLongSeconds:   15,
	}

	applyOverrides(cfg, &Options{})

	// Zero options leave the file settings alone.
	require.Equal(t, "http://sensor.local/status", cfg.APIURL)
	require.Equal(t, uint64(5), cfg.CheckIntervalSeconds)

	applyOverrides(cfg, &Options{
		APIURL:               "http://other.local/status",
		CheckIntervalSeconds: 1,
		OpenTooLongSeconds:   60,
		SingleNotification:   true,
	})

	require.Equal(t, "http://other.local/status", cfg.APIURL)
	require.Equal(t, uint64(1), cfg.CheckIntervalSeconds)
	require.Equal(t, uint64(60), cfg.OpenTooLongSeconds)
	require.True(t, cfg.SingleNotification)
}

// TestBuildChannels constructs only the enabled channels.
func TestBuildChannels(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{APIURL: "http://sensor.local/status"}
	require.Empty(t, buildChannels(cfg))

	cfg.Telegram = config.TelegramConfig{
		Enabled: true,
		Token:   "2345:token",
		ChatID:  "345678",
	}

	channels := buildChannels(cfg)
	require.Len(t, channels, 1)
	require.Equal(t, "telegram", channels[0].Name())

	cfg.SMS = config.SMSConfig{
		Enabled:     true,
		APIUsername: "user",
		APIPassword: "pass",
		FromNumber:  "1234567890",
		ToNumber:    "0987654321",
	}

	channels = buildChannels(cfg)
	require.Len(t, channels, 2)
	require.Equal(t, "sms", channels[0].Name())
}

// TestRunTelegramTest_NotConfigured rejects test mode without the channel.
func TestRunTelegramTest_NotConfigured(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{APIURL: "http://sensor.local/status"}

	err := runTelegramTest(context.Background(), cfg, "hello")
	require.ErrorIs(t, err, errTelegramNotConfigured)
}

// TestRun_MissingConfig surfaces a readable error for an absent settings file.
func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load configuration")
}
