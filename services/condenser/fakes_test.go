// services/condenser/fakes_test.go
package condenser

import "strings"

// Compile-time checks.
var (
	_ Sensor  = (*fakeSensor)(nil)
	_ Display = (*fakeDisplay)(nil)
	_ LogSink = (*fakeLog)(nil)
	_ GPIOPin = (*fakePin)(nil)
)

type fakeSensor struct {
	f, c, rh float64
}

func (s *fakeSensor) ReadTemperatureF() float64 { return s.f }
func (s *fakeSensor) ReadTemperatureC() float64 { return s.c }
func (s *fakeSensor) ReadHumidity() float64     { return s.rh }

// fakeDisplay is a 2x16 cell buffer driven through the Display contract.
type fakeDisplay struct {
	cells    [2][displayWidth]byte
	col, row uint8
	clears   int
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	d.blank()
	return d
}

func (d *fakeDisplay) blank() {
	for r := range d.cells {
		for c := range d.cells[r] {
			d.cells[r][c] = ' '
		}
	}
}

func (d *fakeDisplay) Clear() error {
	d.blank()
	d.col, d.row = 0, 0
	d.clears++
	return nil
}

func (d *fakeDisplay) SetCursor(col, row uint8) error {
	d.col, d.row = col, row
	return nil
}

func (d *fakeDisplay) Print(p []byte) error {
	for _, b := range p {
		if int(d.row) < len(d.cells) && int(d.col) < displayWidth {
			d.cells[d.row][d.col] = b
		}
		d.col++
	}
	return nil
}

func (d *fakeDisplay) rowText(r int) string { return string(d.cells[r][:]) }

type fakeLog struct {
	lines []string
}

func (l *fakeLog) WriteLine(s string) { l.lines = append(l.lines, s) }

func (l *fakeLog) contains(sub string) bool {
	for _, ln := range l.lines {
		if strings.Contains(ln, sub) {
			return true
		}
	}
	return false
}

type fakePin struct {
	configured bool
	level      bool
	sets       []bool
}

func (p *fakePin) ConfigureOutput(initial bool) error {
	p.configured = true
	p.level = initial
	return nil
}

func (p *fakePin) Set(level bool) {
	p.level = level
	p.sets = append(p.sets, level)
}

func (p *fakePin) Get() bool { return p.level }

func fakeActuators() (ActuatorPins, [3]*fakePin) {
	pins := [3]*fakePin{{}, {}, {}}
	return ActuatorPins{Pump: pins[0], Fan: pins[1], TEC: pins[2]}, pins
}
