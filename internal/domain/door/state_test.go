package door

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewState verifies the initial state has every field empty.
func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState()

	require.Nil(t, s.LastKnownClosed)
	require.Nil(t, s.OpenedAt)
	require.Nil(t, s.ClosedAt)
	require.False(t, s.EscalationSent)
	require.Zero(t, s.BackoffIndex)
	require.Nil(t, s.LastEscalationAt)
}

// TestResetEscalation ensures episode bookkeeping is cleared without
// touching the door-state fields.
func TestResetEscalation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	opened := now.Add(-time.Hour)

	s := &State{
		OpenedAt:         &opened,
		EscalationSent:   true,
		BackoffIndex:     3,
		LastEscalationAt: &now,
	}

	s.ResetEscalation()

	require.False(t, s.EscalationSent)
	require.Zero(t, s.BackoffIndex)
	require.Nil(t, s.LastEscalationAt)

	// Door-state tracking is untouched.
	require.NotNil(t, s.OpenedAt)
}

// TestStateClone verifies Clone deep-copies every pointer field and handles nil.
func TestStateClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*State)(nil).Clone())

	closed := true
	opened := time.Unix(100, 0)
	escalated := time.Unix(200, 0)

	s := &State{
		LastKnownClosed:  &closed,
		OpenedAt:         &opened,
		EscalationSent:   true,
		BackoffIndex:     2,
		LastEscalationAt: &escalated,
	}

	c := s.Clone()

	require.Equal(t, s, c)
	require.NotSame(t, s, c)
	require.NotSame(t, s.LastKnownClosed, c.LastKnownClosed)
	require.NotSame(t, s.OpenedAt, c.OpenedAt)
	require.NotSame(t, s.LastEscalationAt, c.LastEscalationAt)
}
