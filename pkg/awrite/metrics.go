package awrite

import (
	"context"
	"io"

	"github.com/quartiq/awrite/pkg/metrics"
)

// InstrumentedBuffer wraps a Buffer with Prometheus metrics collection. It
// mirrors the Buffer's method set, so it can be used anywhere a Target is
// expected.
type InstrumentedBuffer struct {
	buf      *Buffer
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewInstrumented wraps buf, recording its fill and flush activity under the
// given buffer name.
func NewInstrumented(buf *Buffer, name string, config metrics.Config) *InstrumentedBuffer {
	ib := &InstrumentedBuffer{buf: buf, name: name}

	if !config.Enabled {
		return ib
	}

	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	ib.registry = registry
	ib.enabled = true
	return ib
}

// Write stages p into the underlying Buffer, counting staged bytes and
// overflow failures.
func (ib *InstrumentedBuffer) Write(p []byte) (int, error) {
	n, err := ib.buf.Write(p)

	if ib.enabled {
		ib.registry.FillCalls.WithLabelValues(ib.name).Inc()
		ib.registry.FillBytes.WithLabelValues(ib.name).Add(float64(n))
		if err != nil {
			ib.registry.FillErrors.WithLabelValues(ib.name).Inc()
		}
		ib.updateUtilization()
	}

	return n, err
}

// Flush flushes the underlying Buffer, counting successful flushes, flushed
// bytes and sink rejections.
func (ib *InstrumentedBuffer) Flush(ctx context.Context) error {
	staged := ib.buf.Len()
	err := ib.buf.Flush(ctx)

	if ib.enabled {
		if err != nil {
			ib.registry.FlushErrors.WithLabelValues(ib.name).Inc()
		} else {
			ib.registry.Flushes.WithLabelValues(ib.name).Inc()
			ib.registry.FlushedBytes.WithLabelValues(ib.name).Add(float64(staged))
		}
		ib.updateUtilization()
	}

	return err
}

// Render runs fn against the instrumented write path and flushes only if fn
// succeeds, preserving the two-phase contract of Buffer.Render.
func (ib *InstrumentedBuffer) Render(ctx context.Context, fn func(io.Writer) error) error {
	if err := fn(ib); err != nil {
		return wrapSync(err)
	}
	return ib.Flush(ctx)
}

// Len returns the number of staged, unflushed bytes.
func (ib *InstrumentedBuffer) Len() int { return ib.buf.Len() }

// Cap returns the scratch region capacity.
func (ib *InstrumentedBuffer) Cap() int { return ib.buf.Cap() }

// Bytes returns the staged prefix of the scratch region.
func (ib *InstrumentedBuffer) Bytes() []byte { return ib.buf.Bytes() }

// Reset abandons any staged bytes without flushing them.
func (ib *InstrumentedBuffer) Reset() {
	ib.buf.Reset()
	if ib.enabled {
		ib.updateUtilization()
	}
}

// ReleaseSink detaches and returns the underlying sink, abandoning any
// staged bytes.
func (ib *InstrumentedBuffer) ReleaseSink() Sink {
	s := ib.buf.ReleaseSink()
	if ib.enabled {
		ib.updateUtilization()
	}
	return s
}

func (ib *InstrumentedBuffer) updateUtilization() {
	if c := ib.buf.Cap(); c > 0 {
		ib.registry.BufferUtilization.WithLabelValues(ib.name).Set(float64(ib.buf.Len()) / float64(c))
	}
}
