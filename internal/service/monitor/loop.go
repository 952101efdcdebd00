package monitor

import (
	"context"
	"time"

	"github.com/oshokin/door-monitor/internal/domain/door"
	"github.com/oshokin/door-monitor/internal/logger"
	"github.com/oshokin/door-monitor/internal/notify"
	"github.com/oshokin/door-monitor/internal/sensor"
)

// Loop drives the monitor: poll, evaluate, notify, sleep, repeat.
// All state mutation happens synchronously in the engine before any
// notification is dispatched, so dispatch never races the state.
type Loop struct {
	// sampler polls the door sensor once per tick.
	sampler sensor.Sampler
	// engine converts samples into notification events.
	engine *Engine
	// channels receive every rendered notification message.
	channels []notify.Channel
	// beeper gives local audible feedback while the door is open, may be nil.
	beeper *notify.Beeper
	// interval is the tick period.
	interval time.Duration
	// now returns the current time, replaceable in tests.
	now func() time.Time
}

// NewLoop assembles a monitor loop.
func NewLoop(
	sampler sensor.Sampler,
	engine *Engine,
	channels []notify.Channel,
	beeper *notify.Beeper,
	interval time.Duration,
) *Loop {
	return &Loop{
		sampler:  sampler,
		engine:   engine,
		channels: channels,
		beeper:   beeper,
		interval: interval,
		now:      time.Now,
	}
}

// Run executes ticks until the context is canceled.
// The first tick fires immediately, matching the poll-then-sleep cadence.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

// tick runs one poll-evaluate-notify cycle.
// A poll failure is logged and the tick ends with no state mutation; the
// regular cadence is the retry. Channel failures never touch engine state.
func (l *Loop) tick(ctx context.Context) {
	closed, err := l.sampler.Poll(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Door status check failed", "error", err)
		return
	}

	now := l.now()
	events := l.engine.Evaluate(door.Sample{Closed: closed}, now)

	l.logStatus(ctx, closed, now)

	if !closed {
		l.beeper.Beep()
	}

	for _, event := range events {
		message := event.Message()

		logger.DebugKV(ctx, "Dispatching notification", "message", message)

		if err := notify.Broadcast(ctx, l.channels, message); err != nil {
			logger.ErrorKV(ctx, "Notification delivery failed", "error", err)
		}
	}
}

// logStatus writes the per-tick door state line with the running duration.
func (l *Loop) logStatus(ctx context.Context, closed bool, now time.Time) {
	state := l.engine.Snapshot()

	if closed {
		if state.ClosedAt != nil {
			logger.Infof(ctx, "The door is closed (closed for %s)", door.FormatDuration(now.Sub(*state.ClosedAt)))
			return
		}

		logger.Info(ctx, "The door is closed")

		return
	}

	if state.OpenedAt != nil {
		logger.Infof(ctx, "The door is open (open for %s)", door.FormatDuration(now.Sub(*state.OpenedAt)))
		return
	}

	logger.Info(ctx, "The door is open")
}
