package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/door-monitor/internal/config"
	"github.com/oshokin/door-monitor/internal/logger"
)

// DefaultTelegramEndpoint is the Telegram bot API entry point.
const DefaultTelegramEndpoint = "https://api.telegram.org"

// Telegram posts messages to a chat through the bot API.
type Telegram struct {
	// client is the HTTP client used for API calls.
	client *http.Client
	// endpoint is the API base URL, overridable for tests.
	endpoint string
	// settings carries the bot token and target chat.
	settings config.TelegramConfig
	// callTimeout bounds individual send requests.
	callTimeout time.Duration
}

// TelegramOption configures the Telegram channel.
type TelegramOption func(*Telegram)

// WithTelegramEndpoint overrides the API base URL.
func WithTelegramEndpoint(endpoint string) TelegramOption {
	return func(t *Telegram) {
		if endpoint != "" {
			t.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithTelegramCallTimeout sets a per-send timeout.
func WithTelegramCallTimeout(timeout time.Duration) TelegramOption {
	return func(t *Telegram) {
		if timeout > 0 {
			t.callTimeout = timeout
		}
	}
}

// NewTelegram creates the Telegram channel from validated settings.
func NewTelegram(settings config.TelegramConfig, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		client:   &http.Client{},
		endpoint: DefaultTelegramEndpoint,
		settings: settings,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Name identifies the channel in logs and aggregated errors.
func (t *Telegram) Name() string {
	return "telegram"
}

// Send posts one message to the configured chat.
func (t *Telegram) Send(ctx context.Context, message string) error {
	logger.DebugKV(ctx, "Sending Telegram message",
		"chat_id", t.settings.ChatID,
		"message", message)

	form := url.Values{}
	form.Set("chat_id", t.settings.ChatID)
	form.Set("text", message)

	callCtx, cancel := callContext(ctx, t.callTimeout)
	defer cancel()

	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", t.endpoint, t.settings.Token)

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, sendURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build Telegram request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send Telegram message: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("Telegram API returned HTTP %d", resp.StatusCode)
	}

	return nil
}
