package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/digitpad/pkg/framework"
)

type fakeIteration struct {
	fx.LoopControl
	now time.Time
}

func (f *fakeIteration) Time() time.Time          { return f.now }
func (f *fakeIteration) Context() context.Context { return context.Background() }
func (f *fakeIteration) PriorityLevel() int       { return fx.PrLvStatus }
func (f *fakeIteration) PostRun(...fx.Controller) {}

func TestBlinker(t *testing.T) {
	var levels []bool
	b := NewBlinker(PinFunc(func(high bool) { levels = append(levels, high) }))
	iter := &fakeIteration{now: time.Unix(100, 0)}

	steps := []struct {
		after  time.Duration
		expect []bool
	}{
		{0, []bool{true}},
		{10 * time.Millisecond, []bool{true}},
		{89 * time.Millisecond, []bool{true}},
		{time.Millisecond, []bool{true, false}},
		{100 * time.Millisecond, []bool{true, false, true}},
		{250 * time.Millisecond, []bool{true, false, true, false}},
	}
	for n, step := range steps {
		iter.now = iter.now.Add(step.after)
		require.NoError(t, b.Control(iter))
		require.Equalf(t, step.expect, levels, "step[%d]", n)
		require.Equal(t, levels[len(levels)-1], b.On())
	}
}
