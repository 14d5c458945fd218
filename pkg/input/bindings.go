package input

import (
	"github.com/robotalks/digitpad/pkg/board"
	"github.com/robotalks/digitpad/pkg/debounce"
)

// Binding ties an input pin to a debounced button and the request it makes.
type Binding struct {
	Pin    int
	Button debounce.Button
	Kind   Kind
}

// DefaultBindings is the board wiring: A increments, B decrements.
var DefaultBindings = []Binding{
	{Pin: board.PinButtonA, Button: debounce.ButtonA, Kind: IncrementRequested},
	{Pin: board.PinButtonB, Button: debounce.ButtonB, Kind: DecrementRequested},
}

// bindingForPin is called from interrupt context and must not allocate.
func bindingForPin(bindings []Binding, pin int) *Binding {
	for n := range bindings {
		if bindings[n].Pin == pin {
			return &bindings[n]
		}
	}
	return nil
}

func bindingForButton(bindings []Binding, button debounce.Button) *Binding {
	for n := range bindings {
		if bindings[n].Button == button {
			return &bindings[n]
		}
	}
	return nil
}
