/*
Package sinks provides ready-made awrite.Sink implementations.

Writer bridges any io.Writer (file, connection, bytes.Buffer) into a sink.
Slice is a fixed-capacity, non-growable in-memory sink. Chan hands each
flushed payload to a consuming goroutine as a single message.

	buf := awrite.NewSize(64, sinks.Writer(os.Stdout))

For a Redis-backed sink see the sinks/redis subpackage.
*/
package sinks
