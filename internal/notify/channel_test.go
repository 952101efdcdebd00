package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var errSendFailed = errors.New("send failed")

// recordingChannel is a minimal Channel implementation for tests.
type recordingChannel struct {
	// name identifies the channel.
	name string
	// err is returned from every Send call.
	err error
	// sent stores the messages passed to Send.
	sent []string
}

// Name returns the configured channel name.
func (c *recordingChannel) Name() string {
	return c.name
}

// Send records the message and returns the configured error.
func (c *recordingChannel) Send(_ context.Context, message string) error {
	c.sent = append(c.sent, message)

	return c.err
}

// TestBroadcast_AllChannels ensures every channel receives the message.
func TestBroadcast_AllChannels(t *testing.T) {
	t.Parallel()

	first := &recordingChannel{name: "sms"}
	second := &recordingChannel{name: "telegram"}

	err := Broadcast(context.Background(), []Channel{first, second}, "door is open")

	require.NoError(t, err)
	require.Equal(t, []string{"door is open"}, first.sent)
	require.Equal(t, []string{"door is open"}, second.sent)
}

// TestBroadcast_FailureDoesNotShortCircuit verifies one channel's failure
// never blocks delivery to the others and failures are aggregated.
func TestBroadcast_FailureDoesNotShortCircuit(t *testing.T) {
	t.Parallel()

	failing := &recordingChannel{name: "sms", err: errSendFailed}
	healthy := &recordingChannel{name: "telegram"}

	err := Broadcast(context.Background(), []Channel{failing, healthy}, "alert")

	require.Error(t, err)
	require.ErrorIs(t, err, errSendFailed)
	require.Contains(t, err.Error(), "sms")
	require.Len(t, multierr.Errors(err), 1)

	// Healthy channel still got the message.
	require.Equal(t, []string{"alert"}, healthy.sent)
}

// TestBroadcast_NoChannels is a no-op without error.
func TestBroadcast_NoChannels(t *testing.T) {
	t.Parallel()

	require.NoError(t, Broadcast(context.Background(), nil, "anything"))
}

// TestBeeper verifies the bell character is written and nil targets are safe.
func TestBeeper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	b := NewBeeperTo(&buf)
	b.Beep()
	b.Beep()

	require.Equal(t, "\a\a", buf.String())

	// Nil beeper is a no-op.
	(*Beeper)(nil).Beep()
}
