package testutil

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"
)

// MockSink is an in-memory asynchronous sink that records each transfer and
// can simulate sink failures and slow transports.
type MockSink struct {
	mu          sync.Mutex
	buf         bytes.Buffer
	payloads    [][]byte
	writeDelay  time.Duration
	errorOnNth  int
	writeCount  int
	shouldError bool
	err         error
}

// NewMockSink creates a new MockSink.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// WriteAll implements awrite.Sink with configurable behavior.
func (ms *MockSink) WriteAll(ctx context.Context, p []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.writeCount++

	if ms.writeDelay > 0 {
		select {
		case <-time.After(ms.writeDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if ms.shouldError {
		return ms.err
	}

	if ms.errorOnNth > 0 && ms.writeCount == ms.errorOnNth {
		return errors.New("simulated error")
	}

	payload := append([]byte(nil), p...)
	ms.payloads = append(ms.payloads, payload)
	ms.buf.Write(payload)
	return nil
}

// String returns everything the sink has accepted so far.
func (ms *MockSink) String() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.String()
}

// Len returns the total number of accepted bytes.
func (ms *MockSink) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.Len()
}

// Payloads returns a copy of the individual transfers, in order.
func (ms *MockSink) Payloads() [][]byte {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := make([][]byte, len(ms.payloads))
	copy(out, ms.payloads)
	return out
}

// WriteCount returns the number of WriteAll calls, including failed ones.
func (ms *MockSink) WriteCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.writeCount
}

// SetWriteDelay configures a delay for each transfer.
func (ms *MockSink) SetWriteDelay(delay time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.writeDelay = delay
}

// SetErrorOnNth configures the sink to reject the nth transfer.
func (ms *MockSink) SetErrorOnNth(n int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.errorOnNth = n
}

// SetAlwaysError configures the sink to reject every transfer with err.
func (ms *MockSink) SetAlwaysError(err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.shouldError = true
	ms.err = err
}

// Reset clears accepted data and all configured behavior.
func (ms *MockSink) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.buf.Reset()
	ms.payloads = nil
	ms.writeCount = 0
	ms.writeDelay = 0
	ms.errorOnNth = 0
	ms.shouldError = false
	ms.err = nil
}

// MockWriter is a test io.Writer with configurable short writes and errors,
// for exercising the io.Writer sink bridge.
type MockWriter struct {
	mu          sync.Mutex
	buf         bytes.Buffer
	maxPerCall  int
	errorOnNth  int
	writeCount  int
	shouldError bool
	err         error
}

// NewMockWriter creates a new MockWriter.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write implements io.Writer with configurable behavior.
func (mw *MockWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.writeCount++

	if mw.shouldError {
		return 0, mw.err
	}

	if mw.errorOnNth > 0 && mw.writeCount == mw.errorOnNth {
		return 0, errors.New("simulated error")
	}

	if mw.maxPerCall > 0 && len(p) > mw.maxPerCall {
		p = p[:mw.maxPerCall]
	}

	return mw.buf.Write(p)
}

// String returns the current buffer contents.
func (mw *MockWriter) String() string {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.String()
}

// WriteCount returns the number of Write calls.
func (mw *MockWriter) WriteCount() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.writeCount
}

// SetMaxPerCall caps how many bytes each Write call accepts, forcing short
// writes.
func (mw *MockWriter) SetMaxPerCall(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.maxPerCall = n
}

// SetErrorOnNth configures the writer to error on the nth write.
func (mw *MockWriter) SetErrorOnNth(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.errorOnNth = n
}

// SetAlwaysError configures the writer to always return the given error.
func (mw *MockWriter) SetAlwaysError(err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shouldError = true
	mw.err = err
}
