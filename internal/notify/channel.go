package notify

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Channel sends a notification message to one destination.
type Channel interface {
	// Name identifies the channel in logs and aggregated errors.
	Name() string
	// Send delivers the message or reports why it could not.
	Send(ctx context.Context, message string) error
}

// Broadcast dispatches the message to every channel.
// Failures are collected per channel and returned aggregated; a failing
// channel never prevents delivery to the remaining ones.
func Broadcast(ctx context.Context, channels []Channel, message string) error {
	var errs error

	for _, ch := range channels {
		if err := ch.Send(ctx, message); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
	}

	return errs
}
