package monitor

import (
	"time"

	"github.com/oshokin/door-monitor/internal/domain/door"
)

// Engine is the door state machine.
//
// It consumes one sample per tick and decides which notifications to emit.
// The immediate opened/closed events are deliberately independent from the
// threshold-gated escalation track: conflating their bookkeeping is the
// classic bug in this kind of monitor, so each keeps its own fields.
// The engine does no I/O and never fails; it is the sole mutator of State.
type Engine struct {
	// state is the monitor state owned exclusively by this engine.
	state *door.State
	// scheduler spaces the open-too-long escalations.
	scheduler *Scheduler
	// threshold is the grace period before the first escalation.
	threshold time.Duration
}

// NewEngine creates an engine with fresh state.
func NewEngine(scheduler *Scheduler, threshold time.Duration) *Engine {
	return &Engine{
		state:     door.NewState(),
		scheduler: scheduler,
		threshold: threshold,
	}
}

// Snapshot returns a copy of the current state for logging and tests.
func (e *Engine) Snapshot() *door.State {
	return e.state.Clone()
}

// Evaluate processes one sample and returns the notifications to send.
func (e *Engine) Evaluate(sample door.Sample, now time.Time) []door.Event {
	closed := sample.Closed

	// First sample ever: record the state and report it, nothing else.
	if e.state.LastKnownClosed == nil {
		if closed {
			e.state.ClosedAt = &now
		} else {
			e.state.OpenedAt = &now
		}

		e.state.LastKnownClosed = &closed

		return []door.Event{{Kind: door.EventStartupStatus, Closed: closed}}
	}

	var events []door.Event

	if *e.state.LastKnownClosed != closed {
		events = append(events, e.transition(closed, now))
		e.state.LastKnownClosed = &closed
	}

	if !closed {
		if event, ok := e.checkOpenTooLong(now); ok {
			events = append(events, event)
		}
	}

	return events
}

// transition applies a state change and returns its unconditional event.
func (e *Engine) transition(closed bool, now time.Time) door.Event {
	if !closed {
		// Door just opened.
		e.state.OpenedAt = &now
		e.state.ClosedAt = nil

		return door.Event{Kind: door.EventOpened}
	}

	// Door just closed: report total open time, then end the episode so no
	// escalation state leaks into the next one.
	totalOpen := now.Sub(*e.state.OpenedAt)

	e.state.OpenedAt = nil
	e.state.ClosedAt = &now
	e.state.ResetEscalation()

	return door.Event{Kind: door.EventClosed, Elapsed: totalOpen}
}

// checkOpenTooLong runs the escalation track while the door stays open.
func (e *Engine) checkOpenTooLong(now time.Time) (door.Event, bool) {
	timeOpen := now.Sub(*e.state.OpenedAt)
	if timeOpen < e.threshold {
		return door.Event{}, false
	}

	if !e.scheduler.Due(e.state, now) {
		return door.Event{}, false
	}

	event := door.Event{
		Kind:         door.EventOpenTooLong,
		Elapsed:      timeOpen,
		BackoffIndex: e.state.BackoffIndex,
		First:        !e.state.EscalationSent,
	}

	e.state.EscalationSent = true
	e.state.LastEscalationAt = &now
	e.state.BackoffIndex++

	return event, true
}
