package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/remote"
	"github.com/robotalks/digitpad/pkg/remote/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/"
	device  = "+"
)

func init() {
	godotenv.Load()
	if val := os.Getenv(remote.EnvMQTTURL); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&device, "id", device, "Device ID to watch, + for all.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Exit(err)
	}

	q.Sub(remote.FrameTopic(device), mqtt.Handler(func(topic string, payload []byte) {
		msg, frame, err := remote.DecodeFrame(payload)
		if err != nil {
			glog.Warningf("%s: bad frame: %v", topic, err)
			return
		}
		id := strings.TrimSuffix(strings.TrimPrefix(topic, remote.TopicRoot+"/"), "/frame")
		fmt.Printf("%s #%d digit=%d\n%s\n", id, msg.Seq, msg.Digit, frame.Grid())
	}))

	runner := fx.NewRunner().HandleSignals()
	runner.Go(q)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
