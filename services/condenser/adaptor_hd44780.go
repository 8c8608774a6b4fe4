// services/condenser/adaptor_hd44780.go
package condenser

import (
	"condenser-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// lcdDisplay adapts an HD44780 character panel behind a PCF8574 I2C
// backpack to the Display contract.
type lcdDisplay struct {
	dev hd44780i2c.Device
}

// NewHD44780Display configures a 16x2 panel at the given I2C address
// (0x27 on the common backpack).
func NewHD44780Display(bus drivers.I2C, addr uint8) (Display, error) {
	d := &lcdDisplay{dev: hd44780i2c.New(bus, addr)}
	err := d.dev.Configure(hd44780i2c.Config{
		Width:  displayWidth,
		Height: 2,
	})
	if err != nil {
		return nil, &errcode.E{C: errcode.DisplayFault, Op: "configure", Err: err}
	}
	return d, nil
}

// The hd44780i2c driver's write methods cannot fail, so these always
// return nil.
func (d *lcdDisplay) Clear() error                   { d.dev.ClearDisplay(); return nil }
func (d *lcdDisplay) SetCursor(col, row uint8) error { d.dev.SetCursor(col, row); return nil }
func (d *lcdDisplay) Print(p []byte) error           { d.dev.Print(p); return nil }
