package guard

import (
	"net/url"
	"strconv"
	"time"
)

// DefaultSessionMinutes is used when no session limit is configured anywhere.
const DefaultSessionMinutes = 15

// DefaultStartupDelay is how long the blocked screen is delayed on startup,
// so the page has a chance to render before the modal covers it.
const DefaultStartupDelay = 2 * time.Second

// unlimitedSeconds is the internal sentinel a zero ("unlimited") session limit
// is normalized to. The literal zero is kept in Config for display.
const unlimitedSeconds = int64(1) << 62

// Config holds resolved guard settings.
type Config struct {
	// SessionLimitMinutes caps a single session. 0 means unlimited.
	SessionLimitMinutes int
	// TotalLimitMinutes caps accumulated usage per calendar day. 0 means unlimited.
	TotalLimitMinutes int
	// Blackout, when set, blocks the session during the configured daily window.
	Blackout *Window
	// StartupDelay overrides DefaultStartupDelay when positive.
	StartupDelay time.Duration
}

// ResolveConfig resolves guard settings with the precedence
// URL query > host-page attribute > built-in default.
// Unparseable values fall back silently, never error.
func ResolveConfig(query url.Values, hostAttr string) Config {
	cfg := Config{
		SessionLimitMinutes: DefaultSessionMinutes,
	}

	if v, ok := parseMinutes(hostAttr); ok {
		cfg.SessionLimitMinutes = v
	}

	if v, ok := parseMinutes(query.Get("timeLimit")); ok {
		cfg.SessionLimitMinutes = v
	}

	if v, ok := parseMinutes(query.Get("totalLimit")); ok {
		cfg.TotalLimitMinutes = v
	}

	return cfg
}

func parseMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}

// sessionSeconds normalizes the session limit for comparisons.
func (c Config) sessionSeconds() int64 {
	if c.SessionLimitMinutes == 0 {
		return unlimitedSeconds
	}

	return int64(c.SessionLimitMinutes) * 60
}

func (c Config) startupDelay() time.Duration {
	if c.StartupDelay > 0 {
		return c.StartupDelay
	}

	return DefaultStartupDelay
}
