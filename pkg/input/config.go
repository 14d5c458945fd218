package input

import (
	"flag"

	"github.com/robotalks/digitpad/pkg/pixelbus"
)

// Config defines the configurations for the controller.
type Config struct {
	Verbose bool
}

var defaultConfig = Config{}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.BoolVar(&defaultConfig.Verbose, "verbose", defaultConfig.Verbose, "Print accepted button events.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates a controller using the config.
func (c *Config) NewController(bus *pixelbus.Bus) *Controller {
	ctl := NewController(bus)
	ctl.Verbose = c.Verbose
	return ctl
}
