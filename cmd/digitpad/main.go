//go:build tinygo

package main

import (
	"io"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/ws2812"

	"github.com/robotalks/digitpad/pkg/board"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/input"
	"github.com/robotalks/digitpad/pkg/pixelbus"
	"github.com/robotalks/digitpad/pkg/status"
)

// criticalWriter writes with interrupts disabled so the bit timing of the
// LED stream is not stretched by a button interrupt.
type criticalWriter struct {
	w io.Writer
}

func (c criticalWriter) Write(p []byte) (int, error) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	return c.w.Write(p)
}

func output(pin machine.Pin) machine.Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return pin
}

func main() {
	red := output(board.PinStatusRed)
	output(board.PinStatusGreen)
	output(board.PinStatusBlue)

	matrix := output(board.PinMatrix)
	bus := pixelbus.New(pixelbus.NewStreamWriter(criticalWriter{w: ws2812.New(matrix)}))

	ctl := input.NewController(bus)
	// channels are off limits in interrupts; the loop polls the queue.
	ctl.Wake = func() {}

	for _, b := range input.DefaultBindings {
		pin := machine.Pin(b.Pin)
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		pin.SetInterrupt(machine.PinFalling, func(p machine.Pin) {
			ctl.Edge(int(p), board.Uptime())
		})
	}

	fx.NewLoop().Add(ctl, status.NewBlinker(red)).RunOrFail()
}
