/*
Package awrite stages formatted output in a fixed-capacity scratch region and
delivers it to an asynchronous sink as a single contiguous write.

The Buffer implements io.Writer over its scratch region, so any formatting
machinery that targets io.Writer can fill it synchronously. Flush is the only
operation that touches the sink, and the only one that waits.

# Quick Start

	buf := awrite.NewSize(64, sinks.Writer(conn))

	// Format, then flush in one call. The flush is skipped if
	// formatting overflows the scratch region.
	err := awrite.Fprintln(ctx, buf, "temp=%d", reading)

Failures carry their origin: a capacity overflow in the scratch region is a
sync error, a rejected transfer is an async error wrapping the sink's own
error.

	if awrite.IsSync(err) {
		// rendered output was too large for the scratch region
	}
	if awrite.IsAsync(err) {
		// the sink rejected the transfer
	}

The scratch region is never reallocated; capacity is fixed at construction.
A Buffer is meant to be driven by a single goroutine. For shared, background
flushing see package autoflush.
*/
package awrite
