// services/condenser/types.go
package condenser

// Sensor is the environment sensor collaborator. Implementations return
// NaN from ReadTemperatureF and ReadHumidity on acquisition failure; the
// Celsius reading carries no such contract and is consumed unchecked.
type Sensor interface {
	ReadTemperatureF() float64
	ReadTemperatureC() float64
	ReadHumidity() float64
}

// Display is a character display with two fixed text regions: the title
// row and the reading row. Column/row addressing is zero-based.
type Display interface {
	Clear() error
	SetCursor(col, row uint8) error
	Print(p []byte) error
}

// LogSink is an append-only, line-oriented text sink.
type LogSink interface {
	WriteLine(s string)
}

// GPIOPin is one binary output line. Set drives the physical level; the
// line retains its last-written level until the next write.
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// ActuatorPins groups the three condenser output lines.
type ActuatorPins struct {
	Pump GPIOPin
	Fan  GPIOPin
	TEC  GPIOPin
}
