package guard

import (
	"fmt"
	"time"
)

// Window is a daily blackout range. Start and End are minutes since midnight;
// a window with End before Start wraps over midnight.
type Window struct {
	start int
	end   int
}

// ParseWindow parses "HH:MM" bounds into a Window.
func ParseWindow(start, end string) (Window, error) {
	s, err := parseClock(start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid start: %w", err)
	}

	e, err := parseClock(end)
	if err != nil {
		return Window{}, fmt.Errorf("invalid end: %w", err)
	}

	return Window{start: s, end: e}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}

	return t.Hour()*60 + t.Minute(), nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()

	if w.start <= w.end {
		return m >= w.start && m < w.end
	}

	// overnight window, e.g. 21:00..07:00
	return m >= w.start || m < w.end
}
