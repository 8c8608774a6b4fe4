// services/condenser/service.go
package condenser

import (
	"context"
	"math"
	"time"

	"condenser-go/control"
	"condenser-go/errcode"
	"condenser-go/psychro"
	"condenser-go/types"
)

// Service runs the condenser control loop: acquire a reading, derive the
// dew point, decide the actuator state, report. One logical thread, fixed
// cycle timing, no shared mutable state beyond the physical output lines.
type Service struct {
	cfg    types.Config
	sensor Sensor
	pins   ActuatorPins
	rep    *Reporter
}

// New builds a Service around explicitly injected collaborators. Zero
// Config fields take the stock defaults.
func New(cfg types.Config, sensor Sensor, pins ActuatorPins, rep *Reporter) *Service {
	return &Service{
		cfg:    cfg.Normalized(),
		sensor: sensor,
		pins:   pins,
		rep:    rep,
	}
}

// Init configures the actuator lines as outputs (driven low) and reports
// the initial status. Called once at process start, before Run.
func (s *Service) Init() error {
	for _, p := range []GPIOPin{s.pins.Pump, s.pins.Fan, s.pins.TEC} {
		if err := p.ConfigureOutput(false); err != nil {
			return &errcode.E{C: errcode.PinFault, Op: "init", Err: err}
		}
	}
	s.rep.Reset()
	s.rep.Status(types.StatusInit)
	return nil
}

// Run executes cycles until ctx is cancelled. On the device ctx never
// cancels; the loop ends at power-off.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runOne(ctx); err != nil {
			return err
		}
	}
}

// RunCycles executes exactly n cycles (host tests and the simulator).
func (s *Service) RunCycles(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := s.runOne(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) runOne(ctx context.Context) error {
	// The sensor needs the settling interval between conversions.
	if err := sleep(ctx, s.cfg.SettlingDelay); err != nil {
		return err
	}
	s.cycle()
	return sleep(ctx, s.cfg.CycleDelay)
}

// cycle is one pass of the decision pipeline.
func (s *Service) cycle() {
	rd := s.acquire()
	if !rd.Valid {
		// Short-circuit: no dew point, no actuator writes. The lines keep
		// whatever level the previous cycle set.
		s.rep.Reading(rd)
		s.rep.Fault(errcode.SensorFailure)
		s.rep.Status(types.StatusError)
		return
	}
	s.rep.Reading(rd)

	dewPointF := psychro.DewPointF(rd.DryBulbC, rd.RelHumidity)
	s.rep.DewPoint(dewPointF)

	state, status := control.Decide(rd.DryBulbF, dewPointF, s.cfg.SpreadThresholdF)
	s.apply(state)
	if status == types.StatusError {
		s.rep.Fault(errcode.DewPointUndefined)
	}
	s.rep.Status(status)
}

// acquire takes one reading. Validity covers the Fahrenheit and humidity
// values only; the Celsius value feeds the estimator unchecked.
func (s *Service) acquire() types.Reading {
	rd := types.Reading{
		DryBulbF:    s.sensor.ReadTemperatureF(),
		DryBulbC:    s.sensor.ReadTemperatureC(),
		RelHumidity: s.sensor.ReadHumidity(),
	}
	rd.Valid = !math.IsNaN(rd.DryBulbF) && !math.IsNaN(rd.RelHumidity)
	return rd
}

// apply re-drives all three lines every cycle, changed or not.
func (s *Service) apply(st types.ActuatorState) {
	s.pins.Pump.Set(st.Pump)
	s.pins.Fan.Set(st.Fan)
	s.pins.TEC.Set(st.TEC)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
