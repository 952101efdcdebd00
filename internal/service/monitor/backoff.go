package monitor

import (
	"time"

	"github.com/oshokin/door-monitor/internal/domain/door"
)

// DefaultBackoffIntervals spaces repeat escalations: 5, 15, 30, 60 minutes,
// then every 60 minutes indefinitely.
//
//nolint:gochecknoglobals // Shared immutable default.
var DefaultBackoffIntervals = []time.Duration{
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	60 * time.Minute,
}

// Scheduler decides whether the next open-too-long escalation is due.
//
// In progressive mode the wait after the N-th escalation is the N-th entry
// of the interval table; past the end of the table the last entry repeats
// indefinitely. In single-notification mode exactly one escalation is sent
// per open episode.
type Scheduler struct {
	// intervals is the ordered escalation spacing table.
	intervals []time.Duration
	// single limits escalations to one per episode.
	single bool
}

// NewScheduler creates a scheduler for the provided policy.
// An empty interval list falls back to DefaultBackoffIntervals.
func NewScheduler(intervals []time.Duration, single bool) *Scheduler {
	if len(intervals) == 0 {
		intervals = DefaultBackoffIntervals
	}

	return &Scheduler{
		intervals: append([]time.Duration(nil), intervals...),
		single:    single,
	}
}

// Due reports whether an escalation should be sent now.
// The first escalation of an episode is always due; the caller gates it on
// the open-too-long threshold.
func (s *Scheduler) Due(state *door.State, now time.Time) bool {
	if !state.EscalationSent {
		return true
	}

	if s.single {
		return false
	}

	// Never notify from corrupted state.
	if state.LastEscalationAt == nil {
		return false
	}

	// BackoffIndex counts escalations already sent, so the wait after the
	// first one is intervals[0]; past the table the last entry holds.
	idx := state.BackoffIndex - 1
	if idx < 0 {
		idx = 0
	}

	if idx >= len(s.intervals) {
		idx = len(s.intervals) - 1
	}

	return now.Sub(*state.LastEscalationAt) >= s.intervals[idx]
}
