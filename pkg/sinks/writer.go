package sinks

import (
	"context"
	"io"

	"github.com/quartiq/awrite/pkg/awrite"
)

// writerSink adapts an io.Writer into an awrite.Sink.
type writerSink struct {
	w io.Writer
}

// Writer returns a Sink that forwards each flushed payload to w, looping on
// short writes until the whole payload is accepted. Cancellation is checked
// before each underlying write; w itself is not interrupted mid-call.
func Writer(w io.Writer) awrite.Sink {
	return &writerSink{w: w}
}

// WriteAll implements awrite.Sink.
func (s *writerSink) WriteAll(ctx context.Context, p []byte) error {
	for len(p) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.w.Write(p)
		p = p[n:]
		if err != nil {
			return err
		}
		if n == 0 && len(p) > 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}
