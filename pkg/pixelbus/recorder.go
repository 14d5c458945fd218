package pixelbus

import "sync"

// Recorder is a WordWriter keeping transmitted frames in memory.
type Recorder struct {
	// Limit is the max number of frames kept, 0 for unlimited.
	Limit int

	lock   sync.RWMutex
	frames [][]uint32
}

// WriteWords implements WordWriter.
func (r *Recorder) WriteWords(words []uint32) error {
	frame := make([]uint32, len(words))
	copy(frame, words)
	r.lock.Lock()
	r.frames = append(r.frames, frame)
	if r.Limit > 0 && len(r.frames) > r.Limit {
		r.frames = r.frames[len(r.frames)-r.Limit:]
	}
	r.lock.Unlock()
	return nil
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() [][]uint32 {
	r.lock.RLock()
	defer r.lock.RUnlock()
	frames := make([][]uint32, len(r.frames))
	copy(frames, r.frames)
	return frames
}

// Last returns the most recent frame.
func (r *Recorder) Last() ([]uint32, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if len(r.frames) == 0 {
		return nil, false
	}
	return r.frames[len(r.frames)-1], true
}
