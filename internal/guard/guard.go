// Package guard contains the play-time session guard: a timer state machine
// enforcing per-session and per-day limits for the embedded mini-game. Its
// counters live in local per-device storage, so the accounting is advisory
// rather than a strict quota.
package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/demeter/internal/daycmp"
)

var log = logrus.WithField("package", "guard")

// WarningAutoDismiss is how long the UI should keep a warning banner visible.
const WarningAutoDismiss = 5 * time.Second

// Reason ...
type Reason string

const (
	// ReasonSessionLimit ...
	ReasonSessionLimit Reason = "session_limit"
	// ReasonDailyLimit ...
	ReasonDailyLimit Reason = "daily_limit"
	// ReasonBlackout ...
	ReasonBlackout Reason = "blackout"
)

// Warning is a one-time, auto-dismissing notification.
type Warning struct {
	Reason      Reason
	AutoDismiss time.Duration
}

// EventSink receives one-way guard notifications for the UI layer.
type EventSink interface {
	Warn(w Warning)
	// Blocked is terminal. The guard never self-unblocks; a fresh session is required.
	Blocked(r Reason)
}

// CounterStore persists per-day usage minutes, keyed by a calendar-day string.
type CounterStore interface {
	Get(ctx context.Context, day string) (int, error)
	// Add increments the day's counter and returns the new total.
	Add(ctx context.Context, day string, minutes int) (int, error)
}

// Guard ...
type Guard struct {
	cfg      Config
	counters CounterStore
	sink     EventSink

	now  func() time.Time
	loc  *time.Location
	tick <-chan time.Time
	stop func()

	mu                 sync.Mutex
	sessionSecondsLeft int64
	blocked            bool
}

// Option ...
type Option func(*Guard)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// WithLocation sets the location used for calendar-day keys.
func WithLocation(loc *time.Location) Option {
	return func(g *Guard) { g.loc = loc }
}

// WithTicker overrides the 1-second ticker, for simulated time in tests.
func WithTicker(ch <-chan time.Time, stop func()) Option {
	return func(g *Guard) {
		g.tick = ch
		g.stop = stop
	}
}

// New creates new instance of Guard.
func New(cfg Config, counters CounterStore, sink EventSink, opts ...Option) *Guard {
	g := &Guard{
		cfg:                cfg,
		counters:           counters,
		sink:               sink,
		now:                time.Now,
		loc:                time.Local,
		sessionSecondsLeft: cfg.sessionSeconds(),
	}

	for _, o := range opts {
		o(g)
	}

	return g
}

// SessionSecondsLeft returns remaining session seconds for display.
func (g *Guard) SessionSecondsLeft() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sessionSecondsLeft
}

// IsBlocked ...
func (g *Guard) IsBlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.blocked
}

// Run drives the guard until the session is blocked or ctx is cancelled.
// Closing the activity page cancels ctx; the daily counter persists.
func (g *Guard) Run(ctx context.Context) error {
	used, err := g.counters.Get(ctx, daycmp.Key(g.now(), g.loc))
	if err != nil {
		return fmt.Errorf("failed to read daily usage: %w", err)
	}

	if reason, ok := g.startupBlock(used); ok {
		// short delay so the page renders before the terminal modal
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(g.cfg.startupDelay()):
		}

		g.block(reason)

		return nil
	}

	if g.tick == nil {
		t := time.NewTicker(time.Second)
		g.tick = t.C
		g.stop = t.Stop
	}
	defer g.stop()

	log.WithField("session_minutes", g.cfg.SessionLimitMinutes).
		WithField("total_minutes", g.cfg.TotalLimitMinutes).
		Debug("session started")

	var (
		elapsed       int64
		sessionWarned bool
		dailyWarned   bool
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-g.tick:
		}

		g.mu.Lock()
		g.sessionSecondsLeft--
		left := g.sessionSecondsLeft
		g.mu.Unlock()

		// a started minute is credited before any block check, so the final
		// minute still counts even when the very next check terminates
		if elapsed%60 == 0 {
			used, err = g.counters.Add(ctx, daycmp.Key(g.now(), g.loc), 1)
			if err != nil {
				return fmt.Errorf("failed to save daily usage: %w", err)
			}
		}
		elapsed++

		// daily limit wins over session limit
		if g.cfg.TotalLimitMinutes > 0 && used >= g.cfg.TotalLimitMinutes {
			g.block(ReasonDailyLimit)
			return nil
		}

		if left <= 0 {
			g.block(ReasonSessionLimit)
			return nil
		}

		if !sessionWarned && g.cfg.SessionLimitMinutes > 0 && left == 60 {
			sessionWarned = true
			g.sink.Warn(Warning{Reason: ReasonSessionLimit, AutoDismiss: WarningAutoDismiss})
		}

		if !dailyWarned && g.cfg.TotalLimitMinutes > 0 && g.cfg.TotalLimitMinutes-used == 1 {
			dailyWarned = true
			g.sink.Warn(Warning{Reason: ReasonDailyLimit, AutoDismiss: WarningAutoDismiss})
		}
	}
}

func (g *Guard) startupBlock(used int) (Reason, bool) {
	if g.cfg.Blackout != nil && g.cfg.Blackout.Contains(g.now().In(g.loc)) {
		return ReasonBlackout, true
	}

	if g.cfg.TotalLimitMinutes > 0 && used >= g.cfg.TotalLimitMinutes {
		return ReasonDailyLimit, true
	}

	return "", false
}

func (g *Guard) block(r Reason) {
	g.mu.Lock()
	g.blocked = true
	g.mu.Unlock()

	log.WithField("reason", r).Info("session blocked")

	g.sink.Blocked(r)
}
