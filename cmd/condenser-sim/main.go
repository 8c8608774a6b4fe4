// Command condenser-sim exercises the full control loop on the host with a
// synthetic sensor: humidity drifts up and down across the threshold, with
// occasional acquisition failures, so every decision branch is visible.
//
//	go run ./cmd/condenser-sim -cycles 30 -delay 100ms
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"condenser-go/services/condenser"
	"condenser-go/types"
)

// simSensor sweeps relative humidity 30..95 % as a sine over the cycle
// count and fails every failEvery-th acquisition with NaN. The loop reads
// temperature-F first each cycle, so the sweep advances there.
type simSensor struct {
	n         int
	failEvery int
	fail      bool
}

func (s *simSensor) ReadTemperatureF() float64 {
	s.n++
	s.fail = s.failEvery > 0 && s.n%s.failEvery == 0
	if s.fail {
		return math.NaN()
	}
	return 77.0
}

func (s *simSensor) ReadTemperatureC() float64 { return 25.0 }

func (s *simSensor) ReadHumidity() float64 {
	if s.fail {
		return math.NaN()
	}
	return 62.5 + 32.5*math.Sin(float64(s.n)/4.0)
}

// consoleDisplay renders the two LCD rows to stdout on every write burst.
type consoleDisplay struct {
	rows     [2][16]byte
	col, row uint8
}

func newConsoleDisplay() *consoleDisplay {
	d := &consoleDisplay{}
	_ = d.Clear()
	return d
}

func (d *consoleDisplay) Clear() error {
	for r := range d.rows {
		for c := range d.rows[r] {
			d.rows[r][c] = ' '
		}
	}
	d.col, d.row = 0, 0
	return nil
}

func (d *consoleDisplay) SetCursor(col, row uint8) error {
	d.col, d.row = col, row
	return nil
}

func (d *consoleDisplay) Print(p []byte) error {
	for _, b := range p {
		if int(d.row) < len(d.rows) && int(d.col) < 16 {
			d.rows[d.row][d.col] = b
		}
		d.col++
	}
	fmt.Printf("lcd |%s|%s|\n", d.rows[0][:], d.rows[1][:])
	return nil
}

// simPin logs level transitions.
type simPin struct {
	name  string
	level bool
}

func (p *simPin) ConfigureOutput(initial bool) error {
	p.level = initial
	return nil
}

func (p *simPin) Set(level bool) {
	if level != p.level {
		fmt.Printf("pin %s -> %v\n", p.name, level)
	}
	p.level = level
}

func (p *simPin) Get() bool { return p.level }

func main() {
	cycles := flag.Int("cycles", 30, "number of control cycles to run")
	delay := flag.Duration("delay", 100*time.Millisecond, "settling and cycle delay")
	failEvery := flag.Int("fail-every", 7, "inject a sensor failure every n-th cycle (0 = never)")
	flag.Parse()

	sensor := &simSensor{failEvery: *failEvery}
	pins := condenser.ActuatorPins{
		Pump: &simPin{name: "pump"},
		Fan:  &simPin{name: "fan"},
		TEC:  &simPin{name: "tec"},
	}

	cfg := types.DefaultConfig()
	cfg.SettlingDelay = *delay
	cfg.CycleDelay = *delay

	rep := condenser.NewReporter(newConsoleDisplay(), condenser.NewWriterLog(os.Stdout))
	svc := condenser.New(cfg, sensor, pins, rep)

	if err := svc.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	if err := svc.RunCycles(context.Background(), *cycles); err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		os.Exit(1)
	}
}
