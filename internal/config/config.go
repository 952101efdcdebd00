package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the door monitor settings.
type Config struct {
	// APIURL is the door sensor status endpoint, e.g.
	// http://192.168.1.226/rpc/Input.GetStatus?id=0 for a Shelly input.
	APIURL string `yaml:"api_url"`
	// CheckIntervalSeconds is the tick period between sensor polls.
	CheckIntervalSeconds uint64 `yaml:"check_interval_seconds"`
	// OpenTooLongSeconds is the grace period before the first escalation.
	OpenTooLongSeconds uint64 `yaml:"open_too_long_seconds"`
	// BackoffIntervalsMinutes spaces repeat escalations; once the list is
	// exhausted the last entry repeats indefinitely.
	BackoffIntervalsMinutes []uint64 `yaml:"backoff_intervals_minutes"`
	// SingleNotification sends exactly one escalation per open episode
	// instead of the progressive sequence.
	SingleNotification bool `yaml:"single_notification"`
	// TimeoutSeconds bounds individual HTTP calls (sensor and channels).
	TimeoutSeconds uint64 `yaml:"timeout_seconds"`
	// Beep rings the terminal bell on every tick while the door is open.
	Beep bool `yaml:"beep"`
	// SMS configures the voip.ms notification channel.
	SMS SMSConfig `yaml:"sms"`
	// Telegram configures the Telegram bot notification channel.
	Telegram TelegramConfig `yaml:"telegram"`
}

// SMSConfig holds voip.ms SMS channel settings.
type SMSConfig struct {
	// Enabled turns the channel on; disabled channels are silently skipped.
	Enabled bool `yaml:"enabled"`
	// APIUsername is the voip.ms API username.
	APIUsername string `yaml:"api_username"`
	// APIPassword is the voip.ms API password.
	APIPassword string `yaml:"api_password"`
	// FromNumber is the sending DID phone number.
	FromNumber string `yaml:"from_number"`
	// ToNumber is the destination phone number.
	ToNumber string `yaml:"to_number"`
}

// TelegramConfig holds Telegram bot channel settings.
type TelegramConfig struct {
	// Enabled turns the channel on; disabled channels are silently skipped.
	Enabled bool `yaml:"enabled"`
	// Token is the bot API token.
	Token string `yaml:"token"`
	// ChatID is the conversation to post into.
	ChatID string `yaml:"chat_id"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "door-monitor-settings.yaml"

	// DefaultCheckIntervalSeconds is the default tick period.
	DefaultCheckIntervalSeconds uint64 = 5

	// DefaultOpenTooLongSeconds is the default escalation grace period.
	DefaultOpenTooLongSeconds uint64 = 15

	// DefaultTimeoutSeconds is the default duration for HTTP operations.
	DefaultTimeoutSeconds uint64 = 5

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// DefaultBackoffIntervalsMinutes is the progressive escalation spacing used
// when the settings file does not provide one.
//
//nolint:gochecknoglobals // Shared immutable default.
var DefaultBackoffIntervalsMinutes = []uint64{5, 15, 30, 60}

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errAPIURLRequired is returned when the sensor endpoint is missing.
	errAPIURLRequired = errors.New("door sensor API URL must be provided")
	// errZeroBackoffInterval is returned when an escalation interval is zero.
	errZeroBackoffInterval = errors.New("backoff intervals must be positive")
	// errSMSCredentialsMissing is returned when the SMS channel is enabled
	// without complete credentials.
	errSMSCredentialsMissing = errors.New("sms channel is enabled but api_username, api_password, from_number and to_number are required")
	// errTelegramCredentialsMissing is returned when the Telegram channel is
	// enabled without complete credentials.
	errTelegramCredentialsMissing = errors.New("telegram channel is enabled but token and chat_id are required")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file carries channel credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.APIURL == "" {
		return errAPIURLRequired
	}

	if _, err := url.ParseRequestURI(cfg.APIURL); err != nil {
		return fmt.Errorf("invalid sensor API URL: %w", err)
	}

	if cfg.CheckIntervalSeconds == 0 {
		cfg.CheckIntervalSeconds = DefaultCheckIntervalSeconds
	}

	if cfg.OpenTooLongSeconds == 0 {
		cfg.OpenTooLongSeconds = DefaultOpenTooLongSeconds
	}

	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if len(cfg.BackoffIntervalsMinutes) == 0 {
		cfg.BackoffIntervalsMinutes = append([]uint64(nil), DefaultBackoffIntervalsMinutes...)
	}

	for _, m := range cfg.BackoffIntervalsMinutes {
		if m == 0 {
			return errZeroBackoffInterval
		}
	}

	if cfg.SMS.Enabled && !cfg.SMS.complete() {
		return errSMSCredentialsMissing
	}

	if cfg.Telegram.Enabled && !cfg.Telegram.complete() {
		return errTelegramCredentialsMissing
	}

	return nil
}

// CheckInterval returns the tick period as a duration.
func (c *Config) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

// OpenTooLongThreshold returns the escalation grace period as a duration.
func (c *Config) OpenTooLongThreshold() time.Duration {
	return time.Duration(c.OpenTooLongSeconds) * time.Second
}

// Timeout returns the HTTP call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BackoffIntervals returns the escalation spacing as durations.
func (c *Config) BackoffIntervals() []time.Duration {
	intervals := make([]time.Duration, 0, len(c.BackoffIntervalsMinutes))
	for _, m := range c.BackoffIntervalsMinutes {
		intervals = append(intervals, time.Duration(m)*time.Minute)
	}

	return intervals
}

// complete reports whether every SMS credential is present.
func (c SMSConfig) complete() bool {
	return c.APIUsername != "" && c.APIPassword != "" && c.FromNumber != "" && c.ToNumber != ""
}

// complete reports whether every Telegram credential is present.
func (c TelegramConfig) complete() bool {
	return c.Token != "" && c.ChatID != ""
}
