package life

import (
	"strconv"
	"time"
)

// Config holds the construction parameters for a Controller.
type Config struct {
	Rows     int
	Cols     int
	Interval time.Duration
	Seed     int64
}

// DefaultInterval is the advance period suggested to hosts when none is given.
const DefaultInterval = 180 * time.Millisecond

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rows: 60, Cols: 80, Interval: DefaultInterval, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Entries that fail to parse or are out of range keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if d, ok := parseInterval(v); ok {
			c.Interval = d
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// parseInterval accepts either a Go duration ("250ms") or a bare number of
// milliseconds ("250").
func parseInterval(v string) (time.Duration, bool) {
	if ms, err := strconv.Atoi(v); err == nil {
		if ms <= 0 {
			return 0, false
		}
		return time.Duration(ms) * time.Millisecond, true
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
