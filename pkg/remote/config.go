package remote

import (
	"flag"
	"fmt"
	"os"

	"github.com/denisbrodbeck/machineid"

	"github.com/robotalks/digitpad/pkg/remote/mqtt"
)

// EnvMQTTURL is the environment variable overriding the default broker.
const EnvMQTTURL = "DIGITPAD_MQTT_URL"

// Config provides options to mirror a display over MQTT.
type Config struct {
	// MQTTBrokerURL specifies the MQTT broker to use, empty to disable.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// DeviceID names the display in topics.
	DeviceID string
}

var defaultConfig = Config{}

// SetupFlags sets command line flags. Defaults are read from the
// environment at this point, so .env files must be loaded before.
func SetupFlags() {
	if val := os.Getenv(EnvMQTTURL); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.DeviceID, "id", defaultConfig.DeviceID, "Device ID, defaults to machine ID.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Enabled indicates a broker is configured.
func (c *Config) Enabled() bool {
	return c.MQTTBrokerURL != ""
}

// NewQueue creates the MQTT queue for the configured broker.
func (c *Config) NewQueue() (*mqtt.Queue, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("MQTT broker not configured")
	}
	q, err := mqtt.NewQueueFromURL(c.MQTTBrokerURL)
	if err != nil {
		return nil, fmt.Errorf("create MQTT queue error: %v", err)
	}
	return q, nil
}

// NewMirror creates a Mirror for the configured broker.
func (c *Config) NewMirror(presser Presser) (*Mirror, error) {
	q, err := c.NewQueue()
	if err != nil {
		return nil, err
	}
	id := c.DeviceID
	if id == "" {
		if id, err = MachineID(); err != nil {
			return nil, err
		}
	}
	return NewMirror(q, id, presser), nil
}

// MachineID retrieves the ID identifying this machine, hashed so the raw
// ID is never published.
func MachineID() (string, error) {
	id, err := machineid.ProtectedID("digitpad")
	if err != nil {
		return "", fmt.Errorf("machine ID: %v", err)
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return id, nil
}
