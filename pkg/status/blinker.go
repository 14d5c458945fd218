// Package status blinks the on-board status LED from the main loop.
package status

import (
	"time"

	fx "github.com/robotalks/digitpad/pkg/framework"
)

// DefaultPeriod is the on and off time of the blink.
const DefaultPeriod = 100 * time.Millisecond

// Pin is a digital output.
type Pin interface {
	Set(high bool)
}

// PinFunc is the func form of Pin.
type PinFunc func(bool)

// Set implements Pin.
func (f PinFunc) Set(high bool) {
	f(high)
}

// Blinker toggles Pin every Period. It never touches the display state.
type Blinker struct {
	Pin    Pin
	Period time.Duration

	on      bool
	toggled time.Time
}

// NewBlinker creates a Blinker with DefaultPeriod.
func NewBlinker(pin Pin) *Blinker {
	return &Blinker{Pin: pin, Period: DefaultPeriod}
}

// AddToLoop implements LoopAdder.
func (b *Blinker) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvStatus, b)
}

// On reports the current LED state.
func (b *Blinker) On() bool {
	return b.on
}

// Control implements Controller.
func (b *Blinker) Control(cc fx.ControlContext) error {
	now := cc.Time()
	if !b.toggled.IsZero() && now.Sub(b.toggled) < b.Period {
		return nil
	}
	b.on = !b.on
	b.toggled = now
	b.Pin.Set(b.on)
	return nil
}
