// Package pixelbus transmits frames to a chain of single-wire addressable
// RGB LEDs (800 kHz, 24 bits per pixel, GRB order).
package pixelbus

import (
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/digitpad/pkg/render"
)

// WordWriter puts the packed words of one frame on the wire.
// Implementations must write all words back-to-back; the chain latches
// once the line stays idle.
type WordWriter interface {
	WriteWords(words []uint32) error
}

// WriteWordsFunc is the func form of WordWriter.
type WriteWordsFunc func([]uint32) error

// WriteWords implements WordWriter.
func (f WriteWordsFunc) WriteWords(words []uint32) error {
	return f(words)
}

// Bus serializes frame transmission.
type Bus struct {
	Writer WordWriter

	lock   sync.Mutex
	frames uint64
}

// New creates a Bus writing to w.
func New(w WordWriter) *Bus {
	return &Bus{Writer: w}
}

// Transmit writes the whole frame. It blocks until all words are handed
// to the writer and never interleaves with another Transmit.
func (b *Bus) Transmit(f render.Frame) error {
	words := PackFrame(&f)
	b.lock.Lock()
	defer b.lock.Unlock()
	if err := b.Writer.WriteWords(words); err != nil {
		return err
	}
	b.frames++
	if glog.V(4) {
		glog.Infof("frame %d transmitted", b.frames)
	}
	return nil
}

// Frames returns the number of frames transmitted successfully.
func (b *Bus) Frames() uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.frames
}
