// services/condenser/reporter_test.go
package condenser

import (
	"testing"

	"condenser-go/errcode"
	"condenser-go/types"
)

func TestReporter_StatusClearsPreviousText(t *testing.T) {
	disp := newFakeDisplay()
	log := &fakeLog{}
	r := NewReporter(disp, log)

	r.Status(types.StatusError)
	if got := disp.rowText(0); got != "SYSTEM: ERROR   " {
		t.Fatalf("title row = %q", got)
	}
	// A shorter status must fully overwrite the longer one.
	r.Status(types.StatusOn)
	if got := disp.rowText(0); got != "SYSTEM: ON      " {
		t.Fatalf("title row after re-render = %q", got)
	}
	if len(log.lines) != 2 || log.lines[0] != "SYSTEM: ERROR" || log.lines[1] != "SYSTEM: ON" {
		t.Fatalf("log lines = %v", log.lines)
	}
}

func TestReporter_ReadingColumns(t *testing.T) {
	disp := newFakeDisplay()
	log := &fakeLog{}
	r := NewReporter(disp, log)

	r.Reading(types.Reading{DryBulbF: 68.5, RelHumidity: 41.275, Valid: true})
	if got := disp.rowText(1); got != "68.50F   41.28% " {
		t.Fatalf("reading row = %q", got)
	}
	if log.lines[0] != "temp 68.50F rh 41.28%" {
		t.Fatalf("log line = %q", log.lines[0])
	}
}

func TestReporter_InvalidReading(t *testing.T) {
	disp := newFakeDisplay()
	log := &fakeLog{}
	r := NewReporter(disp, log)

	r.Reading(types.Reading{Valid: false})
	if got := disp.rowText(1); got != "N/A      N/A    " {
		t.Fatalf("reading row = %q", got)
	}
	if log.lines[0] != "temp N/A rh N/A" {
		t.Fatalf("log line = %q", log.lines[0])
	}
}

func TestReporter_DewPointLogOnly(t *testing.T) {
	disp := newFakeDisplay()
	log := &fakeLog{}
	r := NewReporter(disp, log)

	r.DewPoint(57.731)
	if log.lines[0] != "dew point 57.73F" {
		t.Fatalf("log line = %q", log.lines[0])
	}
	// The display must stay blank.
	if disp.rowText(0) != "                " || disp.rowText(1) != "                " {
		t.Fatalf("display touched by dew point: %q / %q", disp.rowText(0), disp.rowText(1))
	}
}

func TestReporter_Fault(t *testing.T) {
	log := &fakeLog{}
	r := NewReporter(newFakeDisplay(), log)
	r.Fault(errcode.SensorFailure)
	if log.lines[0] != "error: sensor_failure" {
		t.Fatalf("log line = %q", log.lines[0])
	}
}
