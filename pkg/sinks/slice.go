package sinks

import (
	"context"
	"errors"
)

// ErrSinkFull is returned by Slice once its fixed capacity is exhausted.
var ErrSinkFull = errors.New("sink capacity exhausted")

// Slice is a fixed-capacity, non-growable in-memory sink. A transfer that
// does not fully fit keeps the bytes that did and fails with ErrSinkFull.
// It never reallocates its backing array.
type Slice struct {
	buf []byte
	pos int
}

// NewSlice creates a Slice sink with the given capacity.
func NewSlice(capacity int) *Slice {
	return &Slice{buf: make([]byte, capacity)}
}

// WrapSlice creates a Slice sink writing into the caller's backing slice.
func WrapSlice(buf []byte) *Slice {
	return &Slice{buf: buf}
}

// WriteAll implements awrite.Sink.
func (s *Slice) WriteAll(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n := copy(s.buf[s.pos:], p)
	s.pos += n
	if n < len(p) {
		return ErrSinkFull
	}
	return nil
}

// Bytes returns the accepted prefix of the backing slice.
func (s *Slice) Bytes() []byte { return s.buf[:s.pos] }

// Len returns the number of accepted bytes.
func (s *Slice) Len() int { return s.pos }

// Cap returns the sink capacity.
func (s *Slice) Cap() int { return len(s.buf) }

// Reset discards all accepted bytes.
func (s *Slice) Reset() { s.pos = 0 }
