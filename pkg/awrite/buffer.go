package awrite

import (
	"context"
)

// Sink is the asynchronous byte destination a Buffer flushes into.
// WriteAll must accept the whole of p or return an error; it is the only
// operation the adapter requires of its transport.
type Sink interface {
	WriteAll(ctx context.Context, p []byte) error
}

// Buffer accumulates bytes in a fixed-capacity scratch region and transmits
// the staged prefix to its Sink on Flush. The scratch region is fixed at
// construction and never reallocated.
//
// Write never blocks and never touches the sink; Flush is the single point
// that waits on the transport. A Buffer performs no internal locking and must
// be driven by one goroutine at a time.
type Buffer struct {
	scratch []byte
	sink    Sink
	pos     int
}

// New creates a Buffer staging into scratch and flushing into sink. The
// caller chooses whether to keep its own reference to scratch; the Buffer
// behaves identically either way.
func New(scratch []byte, sink Sink) *Buffer {
	return &Buffer{scratch: scratch, sink: sink}
}

// NewSize creates a Buffer with a freshly allocated scratch region of n
// bytes. This is the only allocation the Buffer ever performs.
func NewSize(n int, sink Sink) *Buffer {
	return New(make([]byte, n), sink)
}

// Len returns the number of staged, unflushed bytes.
func (b *Buffer) Len() int { return b.pos }

// Cap returns the scratch region capacity.
func (b *Buffer) Cap() int { return len(b.scratch) }

// Bytes returns the staged prefix of the scratch region. The slice aliases
// the scratch region and is valid only until the next Write, Flush or Reset.
func (b *Buffer) Bytes() []byte { return b.scratch[:b.pos] }

// Reset abandons any staged bytes without flushing them.
func (b *Buffer) Reset() { b.pos = 0 }

// Write appends p to the scratch region, implementing io.Writer so fmt and
// friends can format straight into the Buffer.
//
// When p does not fully fit, Write copies the bytes that do, advances past
// them and returns a sync error wrapping ErrBufferFull; the returned count
// tells a retrying caller where to resume. An empty p always succeeds.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.sink == nil {
		return 0, syncErr(ErrSinkReleased)
	}
	if len(p) == 0 {
		return 0, nil
	}
	n := copy(b.scratch[b.pos:], p)
	b.pos += n
	if n < len(p) {
		return n, syncErr(ErrBufferFull)
	}
	return n, nil
}

// Flush transmits the staged prefix to the sink as one transfer and, on
// success, resets the staged length to zero. An empty Buffer flushes
// successfully without invoking the sink.
//
// On sink failure the staged bytes are kept and the staged length is
// unchanged, so retrying Flush retransmits the same prefix. The sink's error
// is returned wrapped as an async Error. If ctx is cancelled mid-transfer the
// sink may have accepted a prefix of the data; the staged bytes can no longer
// be trusted and the caller should Reset or discard the Buffer.
func (b *Buffer) Flush(ctx context.Context) error {
	if b.sink == nil {
		return syncErr(ErrSinkReleased)
	}
	if b.pos == 0 {
		return nil
	}
	if err := b.sink.WriteAll(ctx, b.scratch[:b.pos]); err != nil {
		return asyncErr(err)
	}
	b.pos = 0
	return nil
}

// ReleaseSink detaches and returns the sink, abandoning any staged bytes.
// This is deliberately not a flush: pending output is lost. Every operation
// on the Buffer afterwards fails with ErrSinkReleased.
func (b *Buffer) ReleaseSink() Sink {
	s := b.sink
	b.sink = nil
	b.pos = 0
	return s
}
