package awrite

import (
	"errors"
	"fmt"
)

// ErrBufferFull is returned when the scratch region has no room for all of a
// nonempty write. The accompanying count reports how many bytes were copied
// before room ran out.
var ErrBufferFull = errors.New("scratch buffer is full")

// ErrSinkReleased is returned when operating on a Buffer after ReleaseSink.
var ErrSinkReleased = errors.New("sink has been released")

// Kind classifies which side of the adapter a failure came from.
type Kind int

const (
	// KindSync marks failures raised synchronously while filling the
	// scratch region.
	KindSync Kind = iota + 1

	// KindAsync marks failures raised by the sink during a flush.
	KindAsync
)

// String returns "sync" or "async".
func (k Kind) String() string {
	switch k {
	case KindSync:
		return "sync"
	case KindAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Error is the unified failure type for buffer operations. Exactly one of the
// two kinds applies: a sync error originates in the scratch region, an async
// error wraps the sink's own error from a flush. The wrapped error stays
// reachable through errors.Is and errors.As.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("awrite: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func syncErr(err error) *Error  { return &Error{Kind: KindSync, Err: err} }
func asyncErr(err error) *Error { return &Error{Kind: KindAsync, Err: err} }

// IsSync reports whether err is a buffer-side failure such as a capacity
// overflow.
func IsSync(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindSync
}

// IsAsync reports whether err is a sink-side failure from a flush.
func IsAsync(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAsync
}
