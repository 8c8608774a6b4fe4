// services/condenser/reporter.go
package condenser

import (
	"condenser-go/errcode"
	"condenser-go/types"
	"condenser-go/x/fmtx"
)

// Display geometry. Row 0 is the title region, row 1 the reading row with
// temperature at column 0 and humidity at column 9.
const (
	displayWidth = 16
	humidityCol  = 9
)

// Reporter renders status and readings to the display and the log. It is
// a presentation sink: methods return nothing and display faults are
// swallowed so a broken panel cannot stall the loop.
type Reporter struct {
	disp Display
	log  LogSink
}

func NewReporter(disp Display, log LogSink) *Reporter {
	return &Reporter{disp: disp, log: log}
}

// Reset wipes both display regions. Called once at start-up before the
// first status render.
func (r *Reporter) Reset() {
	_ = r.disp.Clear()
}

// Status renders the title row. The text is padded to the full row width
// so each re-render clears the previous status.
func (r *Reporter) Status(st types.Status) {
	line := "SYSTEM: " + st.String()
	_ = r.disp.SetCursor(0, 0)
	_ = r.disp.Print([]byte(fmtx.PadRight(line, displayWidth)))
	r.log.WriteLine(line)
}

// Reading renders temperature (°F) and humidity (%) on the reading row and
// the log, two decimals each. An invalid reading renders "N/A" at both
// column offsets.
func (r *Reporter) Reading(rd types.Reading) {
	temp, hum := "N/A", "N/A"
	if rd.Valid {
		temp = fmtx.FormatFixed(rd.DryBulbF, 2) + "F"
		hum = fmtx.FormatFixed(rd.RelHumidity, 2) + "%"
	}
	_ = r.disp.SetCursor(0, 1)
	_ = r.disp.Print([]byte(fmtx.PadRight(temp, humidityCol)))
	_ = r.disp.SetCursor(humidityCol, 1)
	_ = r.disp.Print([]byte(fmtx.PadRight(hum, displayWidth-humidityCol)))
	r.log.WriteLine("temp " + temp + " rh " + hum)
}

// DewPoint goes to the log only; the display never shows it.
func (r *Reporter) DewPoint(dewPointF float64) {
	r.log.WriteLine("dew point " + fmtx.FormatFixed(dewPointF, 2) + "F")
}

// Fault appends a diagnostic code line to the log.
func (r *Reporter) Fault(c errcode.Code) {
	r.log.WriteLine("error: " + string(c))
}
