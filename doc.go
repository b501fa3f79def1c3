/*
Package awrite provides fixed-capacity buffering between synchronous
formatted-text writers and asynchronous byte sinks.

Core (pkg/awrite):
  - Buffer: fixed scratch region + cursor + asynchronous sink
  - Fprintf/Fprintln: format, then flush only if formatting succeeded
  - Error: sync (capacity exceeded) vs async (sink failure) classification
  - InstrumentedBuffer: Prometheus-instrumented wrapper

Sinks (pkg/sinks):
  - Writer: bridge any io.Writer into a sink
  - Slice: fixed-capacity, non-growable in-memory sink
  - Chan: hand each transfer to a consuming goroutine
  - sinks/redis: append each transfer to a Redis list

Background flushing (pkg/autoflush):
  - Flusher: interval- and cron-driven draining of a shared buffer

Example usage:

	import (
		"github.com/quartiq/awrite/pkg/awrite"
		"github.com/quartiq/awrite/pkg/sinks"
	)

	buf := awrite.NewSize(64, sinks.Writer(conn))

	if err := awrite.Fprintln(ctx, buf, "status=%s", status); err != nil {
		if awrite.IsSync(err) {
			// output too large for the scratch region
		}
	}
*/
package awrite
