//go:build !tinygo

// Command digitpad is the display firmware. It only runs on the board:
//
//	tinygo flash -target=pico ./cmd/digitpad
//
// Use digitsim to run the display on a host.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "digitpad is firmware, build it with tinygo; see digitsim for a host simulation")
	os.Exit(1)
}
