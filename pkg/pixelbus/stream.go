package pixelbus

import "io"

// StreamWriter serializes words as 3 bytes each, most significant byte
// first (G, R, B), and sends a frame with a single Write.
type StreamWriter struct {
	Writer io.Writer

	buf []byte
}

// NewStreamWriter wraps an io.Writer, typically an LED strip driver.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{Writer: w}
}

// WriteWords implements WordWriter.
func (s *StreamWriter) WriteWords(words []uint32) error {
	s.buf = s.buf[:0]
	for _, w := range words {
		s.buf = append(s.buf, byte(w>>16), byte(w>>8), byte(w))
	}
	n, err := s.Writer.Write(s.buf)
	if err == nil && n < len(s.buf) {
		err = io.ErrShortWrite
	}
	return err
}
