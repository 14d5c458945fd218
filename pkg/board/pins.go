// Package board describes how the display is wired.
package board

import "time"

// Pin assignments.
const (
	PinStatusRed   = 13
	PinStatusGreen = 11
	PinStatusBlue  = 12

	// Buttons are pulled up, active low and trigger on the falling edge.
	PinButtonA = 5
	PinButtonB = 6

	// PinMatrix drives the data line of the 5x5 LED matrix.
	PinMatrix = 7
)

var boot = time.Now()

// Uptime returns the monotonic time since the program started.
func Uptime() time.Duration {
	return time.Since(boot)
}
