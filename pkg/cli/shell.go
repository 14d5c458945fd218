// Package cli provides an interactive shell driving a simulated display.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/digitpad/pkg/debounce"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/pixelbus"
)

// Display is the controller side the shell talks to.
type Display interface {
	Press(debounce.Button) (debounce.Verdict, error)
	Digit() int
	Pending() int
	Suppressed() uint32
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Shell    *ishell.Shell
	Display  Display
	Recorder *pixelbus.Recorder
	Bus      *pixelbus.Bus
}

const (
	shellKey    = "$shell"
	settleDelay = 5 * time.Millisecond
	settleMax   = 200 * time.Millisecond
)

// New creates a new shell.
func New(display Display, bus *pixelbus.Bus, rec *pixelbus.Recorder) *Shell {
	s := &Shell{
		Shell:    ishell.New(),
		Display:  display,
		Recorder: rec,
		Bus:      bus,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("digitpad > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Run implements Runnable. The shell stops when ctx is done, and returns
// nil when the user exits.
func (s *Shell) Run(ctx context.Context) error {
	return fx.RunWithContextCancel(ctx, s.Shell.Close, func() error {
		s.Shell.Run()
		return nil
	})
}

// Process runs a single command line without interaction.
func (s *Shell) Process(args ...string) error {
	return s.Shell.Process(args...)
}

// Press presses a button and, if the edge is accepted, waits until the
// resulting frame has been transmitted.
func (s *Shell) Press(b debounce.Button) (debounce.Verdict, error) {
	frames := s.Bus.Frames()
	verdict, err := s.Display.Press(b)
	if err != nil || verdict != debounce.Accepted {
		return verdict, err
	}
	for waited := time.Duration(0); s.Bus.Frames() == frames && waited < settleMax; waited += settleDelay {
		time.Sleep(settleDelay)
	}
	return verdict, nil
}

// FrameGrid draws the last transmitted frame.
func (s *Shell) FrameGrid() (string, bool) {
	words, ok := s.Recorder.Last()
	if !ok {
		return "", false
	}
	frame := pixelbus.UnpackFrame(words)
	return frame.Grid(), true
}

func pressCmd(name string, aliases []string, b debounce.Button) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    name,
		Aliases: aliases,
		Help:    fmt.Sprintf("press button %s", b),
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			verdict, err := s.Press(b)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%s: digit %d\n", verdict, s.Display.Digit())
		},
	}
}

var (
	// PressACmd presses button A (increment).
	PressACmd = pressCmd("a", []string{"inc", "+"}, debounce.ButtonA)

	// PressBCmd presses button B (decrement).
	PressBCmd = pressCmd("b", []string{"dec", "-"}, debounce.ButtonB)

	// ShowCmd prints the last transmitted frame.
	ShowCmd = &ishell.Cmd{
		Name:    "show",
		Aliases: []string{"s"},
		Help:    "print the LED matrix",
		Func: func(c *ishell.Context) {
			grid, ok := ShellFrom(c).FrameGrid()
			if !ok {
				c.Println("no frame transmitted")
				return
			}
			c.Print(grid)
		},
	}

	// StatusCmd prints display counters.
	StatusCmd = &ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "print digit and counters",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			c.Printf("digit=%d frames=%d suppressed=%d pending=%d\n",
				s.Display.Digit(), s.Bus.Frames(), s.Display.Suppressed(), s.Display.Pending())
		},
	}

	commands = []*ishell.Cmd{PressACmd, PressBCmd, ShowCmd, StatusCmd}
)
