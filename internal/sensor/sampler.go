package sensor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sampler retrieves the current door state.
// Closed is true when the sensor reports the door shut.
type Sampler interface {
	Poll(ctx context.Context) (closed bool, err error)
}

// statusPayload mirrors the sensor's JSON response.
type statusPayload struct {
	// ID is the input number on the sensor device.
	ID int `json:"id"`
	// State is true when the contact is closed.
	State bool `json:"state"`
}

// HTTPSampler polls a door sensor over HTTP.
// It reuses one http.Client so connections are kept alive between ticks.
type HTTPSampler struct {
	// client is the HTTP client used for sensor requests.
	client *http.Client
	// apiURL is the sensor status endpoint.
	apiURL string
	// callTimeout bounds individual poll requests.
	callTimeout time.Duration
}

// Option configures sampler behaviour.
type Option func(*HTTPSampler)

// WithCallTimeout sets a per-poll timeout.
func WithCallTimeout(timeout time.Duration) Option {
	return func(s *HTTPSampler) {
		if timeout > 0 {
			s.callTimeout = timeout
		}
	}
}

// errURLRequired is returned when the sensor endpoint is missing.
var errURLRequired = errors.New("sensor API URL must be provided")

// NewHTTPSampler creates a sampler for the provided status endpoint.
func NewHTTPSampler(apiURL string, opts ...Option) (*HTTPSampler, error) {
	if apiURL == "" {
		return nil, errURLRequired
	}

	sampler := &HTTPSampler{
		client: &http.Client{},
		apiURL: apiURL,
	}

	for _, opt := range opts {
		opt(sampler)
	}

	return sampler, nil
}

// Poll fetches the door state once.
// Any transport failure, non-success status or malformed payload is an error;
// the caller decides how to keep the tick cadence going.
func (s *HTTPSampler) Poll(ctx context.Context) (bool, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return false, fmt.Errorf("build sensor request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("poll sensor: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, fmt.Errorf("sensor returned HTTP %d", resp.StatusCode)
	}

	var payload statusPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode sensor response: %w", err)
	}

	return payload.State, nil
}

// callContext returns a context with the sampler's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (s *HTTPSampler) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.callTimeout)
}
