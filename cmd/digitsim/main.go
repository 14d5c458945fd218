package main

import (
	"flag"
	"time"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	"github.com/robotalks/digitpad/pkg/cli"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/input"
	"github.com/robotalks/digitpad/pkg/pixelbus"
	"github.com/robotalks/digitpad/pkg/remote"
	"github.com/robotalks/digitpad/pkg/status"
)

var (
	interval = fx.DefaultInterval
	envFile  = ".env"
)

func init() {
	// a missing .env is fine.
	godotenv.Load(envFile)
	flag.DurationVar(&interval, "interval", interval, "Main loop interval.")
	input.SetupFlags()
	remote.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	rec := &pixelbus.Recorder{Limit: 64}
	bus := pixelbus.New(rec)
	ctl := input.NewConfig().NewController(bus)
	blinker := status.NewBlinker(status.PinFunc(func(on bool) {
		glog.V(5).Infof("status LED %v", on)
	}))

	loop := fx.NewLoop()
	loop.Interval = interval
	loop.Add(ctl, blinker)

	if conf := remote.NewConfig(); conf.Enabled() {
		mirror, err := conf.NewMirror(ctl)
		if err != nil {
			glog.Exit(err)
		}
		ctl.Observers = append(ctl.Observers, mirror)
		loop.Add(mirror)
	}

	sh := cli.New(ctl, bus, rec)
	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop))

	if args := flag.Args(); len(args) > 0 {
		// give the loop a chance to show the startup frame.
		time.Sleep(interval)
		if err := sh.Process(args...); err != nil {
			glog.Error(err)
		}
		runner.Stop()
	} else {
		runner.Go(fx.NamedRun("shell", sh))
	}

	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
