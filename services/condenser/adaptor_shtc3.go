// services/condenser/adaptor_shtc3.go
package condenser

import (
	"math"
	"sync"
	"time"

	"condenser-go/psychro"
	"condenser-go/x/mathx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/shtc3"
)

// shtReader is the slice of the shtc3 driver the adaptor needs. Kept as an
// interface so tests can script conversions without an I2C bus.
type shtReader interface {
	WakeUp() error
	Sleep() error
	ReadTemperatureHumidity() (temperature int32, humidity int32, err error)
}

// shtc3Sensor adapts the SHTC3 driver to the Sensor contract: float values,
// NaN on failure. One conversion serves all three getters; the result is
// held for minInterval so the per-cycle F/C/RH reads do not trigger three
// bus transactions.
type shtc3Sensor struct {
	mu          sync.Mutex
	drv         shtReader
	minInterval time.Duration

	last time.Time
	tmc  int32 // milli-°C
	rhm  int32 // milli-%RH
	ok   bool
}

// NewSHTC3Sensor returns a Sensor backed by an SHTC3 on the given bus.
// minInterval <= 0 defaults to the stock settling delay of 2s.
func NewSHTC3Sensor(bus drivers.I2C, minInterval time.Duration) Sensor {
	drv := shtc3.New(bus)
	return newSHTC3Sensor(shtc3Reader{&drv}, minInterval)
}

// shtc3Reader bridges the real driver to shtReader: the driver reports
// humidity as int16 hundredths of a percent, while shtReader carries
// int32 milli-percent.
type shtc3Reader struct {
	*shtc3.Device
}

func (r shtc3Reader) ReadTemperatureHumidity() (int32, int32, error) {
	tmc, rh, err := r.Device.ReadTemperatureHumidity()
	return tmc, int32(rh) * 10, err
}

func newSHTC3Sensor(drv shtReader, minInterval time.Duration) *shtc3Sensor {
	if minInterval <= 0 {
		minInterval = 2 * time.Second
	}
	return &shtc3Sensor{drv: drv, minInterval: minInterval}
}

func (s *shtc3Sensor) ReadTemperatureC() float64 {
	tmc, _, ok := s.sample()
	if !ok {
		return math.NaN()
	}
	return float64(tmc) / 1000.0
}

func (s *shtc3Sensor) ReadTemperatureF() float64 {
	tmc, _, ok := s.sample()
	if !ok {
		return math.NaN()
	}
	return psychro.CToF(float64(tmc) / 1000.0)
}

func (s *shtc3Sensor) ReadHumidity() float64 {
	_, rhm, ok := s.sample()
	if !ok {
		return math.NaN()
	}
	return float64(rhm) / 1000.0
}

// sample returns the cached conversion, refreshing it once minInterval has
// elapsed. A failed conversion is cached too: the sensor needs the same
// settling time before a retry.
func (s *shtc3Sensor) sample() (tmc, rhm int32, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.last.IsZero() && time.Since(s.last) < s.minInterval {
		return s.tmc, s.rhm, s.ok
	}
	s.last = time.Now()
	s.ok = false

	if err := s.drv.WakeUp(); err != nil {
		return 0, 0, false
	}
	defer func() { _ = s.drv.Sleep() }()

	t, h, err := s.drv.ReadTemperatureHumidity()
	if err != nil {
		return 0, 0, false
	}
	s.tmc = t
	s.rhm = mathx.Clamp(h, 0, 100_000)
	s.ok = true
	return s.tmc, s.rhm, true
}
