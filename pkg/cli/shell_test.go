package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/digitpad/pkg/debounce"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/glyph"
	"github.com/robotalks/digitpad/pkg/input"
	"github.com/robotalks/digitpad/pkg/pixelbus"
	"github.com/robotalks/digitpad/pkg/render"
)

type fakeDisplay struct {
	bus     *pixelbus.Bus
	digit   int
	presses []debounce.Button
}

func (d *fakeDisplay) Press(b debounce.Button) (debounce.Verdict, error) {
	d.presses = append(d.presses, b)
	if d.bus != nil {
		d.bus.Transmit(render.Render(d.digit, render.DefaultOn))
	}
	return debounce.Accepted, nil
}

func (d *fakeDisplay) Digit() int         { return d.digit }
func (d *fakeDisplay) Pending() int       { return 0 }
func (d *fakeDisplay) Suppressed() uint32 { return 0 }

func TestShellPress(t *testing.T) {
	rec := &pixelbus.Recorder{}
	bus := pixelbus.New(rec)
	display := fakeDisplay{bus: bus}
	s := New(&display, bus, rec)
	require.NoError(t, s.Process("a"))
	require.NoError(t, s.Process("dec"))
	require.Equal(t, []debounce.Button{debounce.ButtonA, debounce.ButtonB}, display.presses)
}

func TestFrameGrid(t *testing.T) {
	var display fakeDisplay
	rec := &pixelbus.Recorder{}
	bus := pixelbus.New(rec)
	s := New(&display, bus, rec)
	_, ok := s.FrameGrid()
	require.False(t, ok)

	require.NoError(t, bus.Transmit(render.Render(1, render.DefaultOn)))
	grid, ok := s.FrameGrid()
	require.True(t, ok)
	require.Equal(t, ".#...\n...#.\n.#...\n...#.\n.#...\n", grid)
}

// slowWriter takes a while per frame like a long LED chain.
type slowWriter struct {
	*pixelbus.Recorder
	delay time.Duration
}

func (w *slowWriter) WriteWords(words []uint32) error {
	time.Sleep(w.delay)
	return w.Recorder.WriteWords(words)
}

func TestPressWaitsForFrame(t *testing.T) {
	rec := &pixelbus.Recorder{}
	bus := pixelbus.New(&slowWriter{Recorder: rec, delay: 30 * time.Millisecond})
	ctl := input.NewController(bus)
	loop := fx.NewLoop()
	loop.Interval = time.Millisecond
	ctl.AddToLoop(loop)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)
	for deadline := time.Now().Add(time.Second); bus.Frames() == 0 && time.Now().Before(deadline); {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, uint64(1), bus.Frames())

	s := New(ctl, bus, rec)
	testCases := []struct {
		button  debounce.Button
		verdict debounce.Verdict
		digit   int
	}{
		{debounce.ButtonA, debounce.Accepted, 1},
		{debounce.ButtonA, debounce.Suppressed, 1},
		{debounce.ButtonB, debounce.Accepted, 0},
	}
	for _, tc := range testCases {
		verdict, err := s.Press(tc.button)
		require.NoError(t, err)
		require.Equal(t, tc.verdict, verdict)
		require.Equal(t, tc.digit, ctl.Digit())
		words, ok := rec.Last()
		require.True(t, ok)
		frame := pixelbus.UnpackFrame(words)
		require.Equal(t, render.Render(tc.digit, render.DefaultOn), frame)
		require.Equal(t, glyph.For(tc.digit).Bits(), litBits(&frame))
	}
	require.Equal(t, uint64(3), bus.Frames())
}

func litBits(f *render.Frame) uint32 {
	var bits uint32
	for _, c := range f {
		bits <<= 1
		if !c.IsOff() {
			bits |= 1
		}
	}
	return bits
}
