// Package input turns button edges into digit changes on the display.
//
// Edges enter through Edge, which is cheap enough to call from an
// interrupt handler: it debounces the edge and queues an Event. The
// main loop drains the queue in Control and performs the update, render
// and transmit for each event.
package input

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/digitpad/pkg/board"
	"github.com/robotalks/digitpad/pkg/debounce"
	"github.com/robotalks/digitpad/pkg/digit"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/pixelbus"
	"github.com/robotalks/digitpad/pkg/render"
)

// FrameObserver is notified after a frame is transmitted.
type FrameObserver interface {
	FrameShown(digit int, frame render.Frame)
}

// FrameShownFunc is the func form of FrameObserver.
type FrameShownFunc func(int, render.Frame)

// FrameShown implements FrameObserver.
func (f FrameShownFunc) FrameShown(d int, frame render.Frame) {
	f(d, frame)
}

// Controller owns the digit and drives the display.
type Controller struct {
	Bindings  []Binding
	OnColor   render.Color
	Clock     func() time.Duration
	Wake      func()
	Verbose   bool
	Observers []FrameObserver

	filter     *debounce.Filter
	state      digit.State
	bus        *pixelbus.Bus
	queue      Queue
	suppressed atomic.Uint32
	pressLock  sync.Mutex
	drops      uint32
}

// NewController creates a Controller transmitting on bus.
func NewController(bus *pixelbus.Bus) *Controller {
	return &Controller{
		Bindings: DefaultBindings,
		OnColor:  render.DefaultOn,
		Clock:    board.Uptime,
		filter:   debounce.NewFilter(),
		bus:      bus,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	if c.Wake == nil {
		c.Wake = loop.TriggerNext
	}
	loop.PreRunAt(fx.PrLvDisplay, fx.ControlFunc(func(fx.ControlContext) error {
		_, err := c.Show()
		return err
	}))
	loop.AddController(fx.PrLvDisplay, c)
}

// Digit returns the displayed digit. Safe from any goroutine.
func (c *Controller) Digit() int {
	return c.state.Value()
}

// Suppressed returns the number of edges rejected as bounces.
func (c *Controller) Suppressed() uint32 {
	return c.suppressed.Load()
}

// Pending returns the number of queued events.
func (c *Controller) Pending() int {
	return c.queue.Len()
}

// Edge handles a falling edge on pin at time at. It must not be called
// concurrently with itself or Press; an interrupt handler shared by
// both buttons satisfies this.
func (c *Controller) Edge(pin int, at time.Duration) debounce.Verdict {
	b := bindingForPin(c.Bindings, pin)
	if b == nil {
		return debounce.Suppressed
	}
	if c.filter.Consider(b.Button, at) != debounce.Accepted {
		c.suppressed.Add(1)
		return debounce.Suppressed
	}
	c.queue.Push(Event{Kind: b.Kind, At: at})
	if wake := c.Wake; wake != nil {
		wake()
	}
	return debounce.Accepted
}

// Press feeds an edge of button from a goroutine, stamped with Clock.
func (c *Controller) Press(button debounce.Button) (debounce.Verdict, error) {
	b := bindingForButton(c.Bindings, button)
	if b == nil {
		return debounce.Suppressed, fmt.Errorf("button %s not bound", button)
	}
	c.pressLock.Lock()
	defer c.pressLock.Unlock()
	return c.Edge(b.Pin, c.Clock()), nil
}

// Control implements Controller. It dispatches queued events in order.
func (c *Controller) Control(cc fx.ControlContext) error {
	if dropped := c.queue.Dropped(); dropped != c.drops {
		glog.Warningf("%d button events dropped, queue full", dropped-c.drops)
		c.drops = dropped
	}
	var errs fx.AggregatedError
	for {
		ev, ok := c.queue.Pop()
		if !ok {
			break
		}
		_, err := c.Dispatch(ev)
		errs.Add(err)
	}
	return errs.Aggregate()
}

// Dispatch applies an event to the digit and shows the result.
func (c *Controller) Dispatch(ev Event) (render.Frame, error) {
	var d int
	switch ev.Kind {
	case IncrementRequested:
		d = c.state.Increment()
	case DecrementRequested:
		d = c.state.Decrement()
	default:
		return render.Frame{}, fmt.Errorf("unknown event %s", ev.Kind)
	}
	if c.Verbose {
		glog.Infof("%s at %v: digit %d", ev.Kind, ev.At, d)
	}
	return c.show(d)
}

// Show renders and transmits the current digit.
func (c *Controller) Show() (render.Frame, error) {
	return c.show(c.state.Value())
}

func (c *Controller) show(d int) (render.Frame, error) {
	frame := render.Render(d, c.OnColor)
	if err := c.bus.Transmit(frame); err != nil {
		return frame, fmt.Errorf("transmit digit %d: %v", d, err)
	}
	for _, o := range c.Observers {
		o.FrameShown(d, frame)
	}
	return frame, nil
}
