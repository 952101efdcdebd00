package door

import (
	"fmt"
	"time"
)

// EventKind identifies which notification an event carries.
type EventKind int

const (
	// EventStartupStatus reports the door state seen on the very first sample.
	EventStartupStatus EventKind = iota
	// EventOpened fires immediately on every closed-to-open transition.
	EventOpened
	// EventClosed fires on every open-to-closed transition with the total open time.
	EventClosed
	// EventOpenTooLong is an escalation sent while the door stays open
	// past the warning threshold.
	EventOpenTooLong
)

// Event is a notification decision made by the engine.
// The opened/closed transition events are unconditional; EventOpenTooLong
// is a separate escalation track gated by the threshold and backoff policy.
type Event struct {
	// Kind selects which notification this is.
	Kind EventKind
	// Closed is the observed door state, meaningful for EventStartupStatus.
	Closed bool
	// Elapsed is the open time carried by EventClosed and EventOpenTooLong.
	Elapsed time.Duration
	// BackoffIndex is the escalation count before this event was emitted.
	BackoffIndex int
	// First marks the initial escalation of an episode.
	First bool
}

// Message renders the human-readable notification text for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventStartupStatus:
		status := "open"
		if e.Closed {
			status = "closed"
		}

		return fmt.Sprintf("Door monitor started, the door is %s", status)
	case EventOpened:
		return "Door is now open"
	case EventClosed:
		return fmt.Sprintf("Door is now closed after being open for %s", FormatDuration(e.Elapsed))
	case EventOpenTooLong:
		if e.First {
			return fmt.Sprintf("ALERT: Door has been open for %s", FormatDuration(e.Elapsed))
		}

		return fmt.Sprintf("REMINDER: Door still open for %s", FormatDuration(e.Elapsed))
	default:
		return ""
	}
}
