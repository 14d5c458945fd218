package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestConsider(t *testing.T) {
	type edge struct {
		button Button
		at     time.Duration
		expect Verdict
	}
	testCases := []struct {
		name  string
		edges []edge
	}{
		{
			name:  "first edge at boot",
			edges: []edge{{ButtonA, 0, Accepted}},
		},
		{
			name: "bounce within window",
			edges: []edge{
				{ButtonA, 0, Accepted},
				{ButtonA, 300 * ms, Suppressed},
				{ButtonA, 450 * ms, Accepted},
			},
		},
		{
			name: "exactly window is suppressed",
			edges: []edge{
				{ButtonA, 1000 * ms, Accepted},
				{ButtonA, 1400 * ms, Suppressed},
				{ButtonA, 1400*ms + time.Microsecond, Accepted},
			},
		},
		{
			name: "suppressed edge does not extend window",
			edges: []edge{
				{ButtonB, 0, Accepted},
				{ButtonB, 399 * ms, Suppressed},
				{ButtonB, 401 * ms, Accepted},
			},
		},
		{
			name: "buttons are independent",
			edges: []edge{
				{ButtonA, 100 * ms, Accepted},
				{ButtonB, 100 * ms, Accepted},
				{ButtonA, 200 * ms, Suppressed},
				{ButtonB, 200 * ms, Suppressed},
			},
		},
		{
			name: "out of order edge",
			edges: []edge{
				{ButtonA, 2000 * ms, Accepted},
				{ButtonA, 1000 * ms, Suppressed},
			},
		},
		{
			name: "unknown button",
			edges: []edge{
				{Button(7), 0, Suppressed},
				{Button(-1), 0, Suppressed},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFilter()
			for n, e := range tc.edges {
				require.Equalf(t, e.expect, f.Consider(e.button, e.at), "edge[%d]", n)
			}
		})
	}
}

func TestSuppressedKeepsState(t *testing.T) {
	f := NewFilter()
	_, ok := f.LastAccepted(ButtonA)
	require.False(t, ok)

	require.Equal(t, Accepted, f.Consider(ButtonA, 10*ms))
	require.Equal(t, Suppressed, f.Consider(ButtonA, 20*ms))
	at, ok := f.LastAccepted(ButtonA)
	require.True(t, ok)
	require.Equal(t, 10*ms, at)

	_, ok = f.LastAccepted(ButtonB)
	require.False(t, ok)
}

func TestMonotonicTimestamps(t *testing.T) {
	f := NewFilter()
	var prev time.Duration
	for at := time.Duration(0); at < 5*time.Second; at += 37 * ms {
		f.Consider(ButtonA, at)
		last, _ := f.LastAccepted(ButtonA)
		require.True(t, last >= prev)
		if last != prev {
			require.True(t, last-prev > Window)
		}
		prev = last
	}
}
