package awrite

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var newline = []byte{'\n'}

// Target is the surface the format helpers operate on: a synchronous fill
// path plus the two-phase render-then-flush protocol. Both Buffer and
// InstrumentedBuffer satisfy it.
type Target interface {
	io.Writer
	Render(ctx context.Context, fn func(io.Writer) error) error
}

// Render runs fn against the buffer's synchronous write path and, only if fn
// succeeds, flushes the staged bytes to the sink.
//
// When fn fails nothing is flushed: the bytes it managed to stage remain in
// the scratch region, uncommitted, for the next fill/flush cycle. Errors from
// fn that are not already classified are reported as sync failures.
func (b *Buffer) Render(ctx context.Context, fn func(io.Writer) error) error {
	if err := fn(b); err != nil {
		return wrapSync(err)
	}
	return b.Flush(ctx)
}

// wrapSync tags err as a sync failure unless it already carries a kind.
func wrapSync(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return syncErr(err)
}

// Fprintf formats per fmt.Fprintf into t and flushes on success. A capacity
// overflow during formatting is returned as a sync error without flushing; a
// rejected transfer is returned as an async error.
func Fprintf(ctx context.Context, t Target, format string, args ...any) error {
	return t.Render(ctx, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// Fprintln is Fprintf with a trailing newline staged as part of the same
// formatting pass. With an empty format it writes just the newline.
func Fprintln(ctx context.Context, t Target, format string, args ...any) error {
	return t.Render(ctx, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return err
		}
		_, err := w.Write(newline)
		return err
	})
}
