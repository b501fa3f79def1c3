package awrite

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/quartiq/awrite/internal/testutil"
	"github.com/quartiq/awrite/pkg/metrics"
)

func newInstrumentedForTest(sink Sink, capacity int) (*InstrumentedBuffer, *metrics.Registry) {
	reg := prometheus.NewRegistry()
	ib := NewInstrumented(NewSize(capacity, sink), "test", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	return ib, ib.registry
}

func TestInstrumentedFill(t *testing.T) {
	sink := testutil.NewMockSink()
	ib, reg := newInstrumentedForTest(sink, 8)

	n, err := ib.Write([]byte("hello"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 5)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FillCalls.WithLabelValues("test")), 1.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FillBytes.WithLabelValues("test")), 5.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FillErrors.WithLabelValues("test")), 0.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.BufferUtilization.WithLabelValues("test")), 5.0/8.0)
}

func TestInstrumentedFillOverflow(t *testing.T) {
	sink := testutil.NewMockSink()
	ib, reg := newInstrumentedForTest(sink, 4)

	_, err := ib.Write([]byte("too large"))
	testutil.AssertEqual(t, errors.Is(err, ErrBufferFull), true)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FillErrors.WithLabelValues("test")), 1.0)
	// The bytes that fit are still counted as staged.
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FillBytes.WithLabelValues("test")), 4.0)
}

func TestInstrumentedFlush(t *testing.T) {
	sink := testutil.NewMockSink()
	ib, reg := newInstrumentedForTest(sink, 16)
	ctx := context.Background()

	err := Fprintln(ctx, ib, "%d", 42)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sink.String(), "42\n")

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.Flushes.WithLabelValues("test")), 1.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FlushedBytes.WithLabelValues("test")), 3.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FlushErrors.WithLabelValues("test")), 0.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.BufferUtilization.WithLabelValues("test")), 0.0)
}

func TestInstrumentedFlushError(t *testing.T) {
	sink := testutil.NewMockSink()
	sink.SetAlwaysError(errors.New("down"))
	ib, reg := newInstrumentedForTest(sink, 16)

	_, err := ib.Write([]byte("data"))
	testutil.AssertNoError(t, err)

	err = ib.Flush(context.Background())
	testutil.AssertEqual(t, IsAsync(err), true)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FlushErrors.WithLabelValues("test")), 1.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.Flushes.WithLabelValues("test")), 0.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.FlushedBytes.WithLabelValues("test")), 0.0)
}

func TestInstrumentedDisabled(t *testing.T) {
	sink := testutil.NewMockSink()
	ib := NewInstrumented(NewSize(8, sink), "off", metrics.Config{Enabled: false})

	err := Fprintf(context.Background(), ib, "plain")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sink.String(), "plain")
}

func TestInstrumentedDelegates(t *testing.T) {
	sink := testutil.NewMockSink()
	ib, _ := newInstrumentedForTest(sink, 8)

	_, err := ib.Write([]byte("abc"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ib.Len(), 3)
	testutil.AssertEqual(t, ib.Cap(), 8)
	testutil.AssertEqual(t, string(ib.Bytes()), "abc")

	ib.Reset()
	testutil.AssertEqual(t, ib.Len(), 0)

	released := ib.ReleaseSink()
	testutil.AssertEqual(t, released == sink, true)
}
