package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oshokin/door-monitor/internal/config"
	"github.com/oshokin/door-monitor/internal/logger"
)

// DefaultSMSEndpoint is the voip.ms REST API entry point.
const DefaultSMSEndpoint = "https://voip.ms/api/v1/rest.php"

// SMS sends messages through the voip.ms sendSMS REST method.
type SMS struct {
	// client is the HTTP client used for API calls.
	client *http.Client
	// endpoint is the API base URL, overridable for tests.
	endpoint string
	// settings carries the channel credentials.
	settings config.SMSConfig
	// callTimeout bounds individual send requests.
	callTimeout time.Duration
}

// SMSOption configures the SMS channel.
type SMSOption func(*SMS)

// WithSMSEndpoint overrides the API base URL.
func WithSMSEndpoint(endpoint string) SMSOption {
	return func(s *SMS) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithSMSCallTimeout sets a per-send timeout.
func WithSMSCallTimeout(timeout time.Duration) SMSOption {
	return func(s *SMS) {
		if timeout > 0 {
			s.callTimeout = timeout
		}
	}
}

// NewSMS creates the voip.ms channel from validated settings.
func NewSMS(settings config.SMSConfig, opts ...SMSOption) *SMS {
	s := &SMS{
		client:   &http.Client{},
		endpoint: DefaultSMSEndpoint,
		settings: settings,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name identifies the channel in logs and aggregated errors.
func (s *SMS) Name() string {
	return "sms"
}

// Send delivers one SMS through the voip.ms REST API.
func (s *SMS) Send(ctx context.Context, message string) error {
	logger.DebugKV(ctx, "Sending SMS",
		"api_username", s.settings.APIUsername,
		"from_number", s.settings.FromNumber,
		"to_number", s.settings.ToNumber,
		"message", message)

	query := url.Values{}
	query.Set("api_username", s.settings.APIUsername)
	query.Set("api_password", s.settings.APIPassword)
	query.Set("method", "sendSMS")
	query.Set("did", s.settings.FromNumber)
	query.Set("dst", s.settings.ToNumber)
	query.Set("message", message)

	callCtx, cancel := callContext(ctx, s.callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build SMS request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send SMS: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("SMS API returned HTTP %d", resp.StatusCode)
	}

	return nil
}

// callContext bounds a request with the provided timeout when it is set.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
