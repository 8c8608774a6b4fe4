// Command condenser: RP2040 firmware for the condenser humidity controller.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/condenser
//
// Wiring assumptions (adjust below as needed):
// - I2C0 @ 400 kHz on Pico defaults: SDA=GP4, SCL=GP5.
// - SHTC3 sensor on I2C address 0x70, HD44780 16x2 backpack on 0x27.
// - Pump relay on GP16, fan on GP17, TEC on GP18 (all active-high).
// - UART0 as the line log: TX=GP0, RX=GP1, 115200 baud.

//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"condenser-go/services/condenser"
	"condenser-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

const (
	pinPump = machine.Pin(16)
	pinFan  = machine.Pin(17)
	pinTEC  = machine.Pin(18)

	lcdAddr = 0x27
)

// rp2Pin adapts machine.Pin to the condenser GPIOPin contract.
type rp2Pin struct{ p machine.Pin }

func (r rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}
func (r rp2Pin) Set(level bool) { r.p.Set(level) }
func (r rp2Pin) Get() bool      { return r.p.Get() }

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot: condenser controller")

	// Serial log on UART0.
	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})
	logSink := condenser.NewWriterLog(uartx.UART0)

	// Shared I2C bus for sensor and display.
	sda := machine.Pin(4)
	scl := machine.Pin(5)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := machine.I2C0.Configure(machine.I2CConfig{SDA: sda, SCL: scl, Frequency: 400_000}); err != nil {
		println("fatal: i2c configure:", err.Error())
		return
	}

	cfg := types.DefaultConfig()

	disp, err := condenser.NewHD44780Display(machine.I2C0, lcdAddr)
	if err != nil {
		println("fatal: display:", err.Error())
		return
	}
	sensor := condenser.NewSHTC3Sensor(machine.I2C0, cfg.SettlingDelay)

	pins := condenser.ActuatorPins{
		Pump: rp2Pin{pinPump},
		Fan:  rp2Pin{pinFan},
		TEC:  rp2Pin{pinTEC},
	}

	svc := condenser.New(cfg, sensor, pins, condenser.NewReporter(disp, logSink))
	if err := svc.Init(); err != nil {
		println("fatal: init:", err.Error())
		return
	}
	// Runs until power-off.
	_ = svc.Run(context.Background())
}
