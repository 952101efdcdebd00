package door

import "time"

// Sample is a single poll result from the door sensor.
// Closed is true when the sensor reports the door shut.
type Sample struct {
	Closed bool
}

// State is everything the monitor remembers between ticks.
// It lives for the process duration and is mutated only by the engine.
type State struct {
	// LastKnownClosed is the last observed door state, nil before the first sample.
	LastKnownClosed *bool
	// OpenedAt is when the current open episode started, nil while closed.
	OpenedAt *time.Time
	// ClosedAt is when the door last closed, nil while open.
	ClosedAt *time.Time
	// EscalationSent indicates an open-too-long sequence has started
	// for the current episode.
	EscalationSent bool
	// BackoffIndex counts escalations already sent in the current episode.
	BackoffIndex int
	// LastEscalationAt is when the most recent escalation was sent.
	LastEscalationAt *time.Time
}

// NewState returns the initial pre-first-sample state.
func NewState() *State {
	return &State{}
}

// ResetEscalation clears the escalation bookkeeping when an episode ends,
// so backoff state never leaks into the next open episode.
func (s *State) ResetEscalation() {
	s.EscalationSent = false
	s.BackoffIndex = 0
	s.LastEscalationAt = nil
}

// Clone returns a copy of the state to avoid leaking internal references.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	cloned := &State{
		EscalationSent: s.EscalationSent,
		BackoffIndex:   s.BackoffIndex,
	}

	if s.LastKnownClosed != nil {
		v := *s.LastKnownClosed
		cloned.LastKnownClosed = &v
	}

	if s.OpenedAt != nil {
		t := *s.OpenedAt
		cloned.OpenedAt = &t
	}

	if s.ClosedAt != nil {
		t := *s.ClosedAt
		cloned.ClosedAt = &t
	}

	if s.LastEscalationAt != nil {
		t := *s.LastEscalationAt
		cloned.LastEscalationAt = &t
	}

	return cloned
}
