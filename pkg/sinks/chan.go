package sinks

import (
	"context"
)

// Chan delivers each flushed payload as one message on C, for handing
// transfers to a consuming goroutine such as a transport driver loop.
// Payloads are copied, so the producing scratch region can be reused as soon
// as WriteAll returns.
type Chan struct {
	C chan []byte
}

// NewChan creates a Chan sink whose channel buffers up to capacity payloads.
func NewChan(capacity int) *Chan {
	return &Chan{C: make(chan []byte, capacity)}
}

// WriteAll implements awrite.Sink. It blocks until the payload is accepted by
// the channel or ctx is cancelled.
func (c *Chan) WriteAll(ctx context.Context, p []byte) error {
	msg := make([]byte, len(p))
	copy(msg, p)

	select {
	case c.C <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the channel, signalling the consumer that no more payloads
// will arrive.
func (c *Chan) Close() {
	close(c.C)
}
