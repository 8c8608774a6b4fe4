// Package types holds the public data shapes shared between the control
// packages and the condenser service.
package types

import "time"

// Reading is one acquisition from the environment sensor. It is created
// once per cycle, consumed immediately, and never retained.
type Reading struct {
	DryBulbC    float64
	DryBulbF    float64
	RelHumidity float64 // percent
	// Valid is false iff the Fahrenheit temperature or the humidity read
	// came back NaN. The Celsius value is intentionally not checked.
	Valid bool
}

// ActuatorState is the commanded level of the three output lines.
// The control law only ever sets them uniformly.
type ActuatorState struct {
	Pump bool
	Fan  bool
	TEC  bool
}

// Status is the coarse system state surfaced on the display title row.
type Status uint8

const (
	StatusInit Status = iota
	StatusOn
	StatusOff
	StatusError
)

// statusText is total over the enum; an out-of-range Status panics rather
// than silently rendering a fallback.
var statusText = [...]string{
	StatusInit:  "INIT",
	StatusOn:    "ON",
	StatusOff:   "OFF",
	StatusError: "ERROR",
}

func (s Status) String() string { return statusText[s] }

// Config centralises the control-law threshold and the cycle timings.
type Config struct {
	// SpreadThresholdF: at or below this dry-bulb/dew-point spread the
	// condenser runs. A 12°F spread corresponds to roughly 60 %RH.
	SpreadThresholdF float64
	// SettlingDelay must elapse before each sensor acquisition.
	SettlingDelay time.Duration
	// CycleDelay is the wait after the actuator decision.
	CycleDelay time.Duration
}

// DefaultConfig returns the original device threshold and timings.
func DefaultConfig() Config {
	return Config{
		SpreadThresholdF: 12.0,
		SettlingDelay:    2 * time.Second,
		CycleDelay:       2 * time.Second,
	}
}

// Normalized returns c with unset fields coerced to the defaults.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.SpreadThresholdF == 0 {
		c.SpreadThresholdF = d.SpreadThresholdF
	}
	if c.SettlingDelay <= 0 {
		c.SettlingDelay = d.SettlingDelay
	}
	if c.CycleDelay <= 0 {
		c.CycleDelay = d.CycleDelay
	}
	return c
}
