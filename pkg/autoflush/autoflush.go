package autoflush

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/quartiq/awrite/pkg/awrite"
)

// ErrClosed is returned when using a Flusher after Close.
var ErrClosed = errors.New("flusher is closed")

// Config holds configuration options for a Flusher.
type Config struct {
	// FlushInterval is how often staged bytes are flushed automatically.
	// Set to 0 to disable interval flushing.
	FlushInterval time.Duration

	// Schedule is an optional cron expression driving additional flushes,
	// e.g. "*/5 * * * *" or "@hourly". Empty disables cron flushing.
	Schedule string

	// FlushTimeout bounds each background flush (defaults to 5s).
	FlushTimeout time.Duration

	// OnFlush is called after each flush that sent data, with the number
	// of bytes handed to the sink.
	OnFlush func(bytes int)

	// OnError is called when a background flush fails.
	OnError func(error)
}

// DefaultConfig returns a default Flusher configuration.
func DefaultConfig() Config {
	return Config{
		FlushInterval: time.Second,
		FlushTimeout:  5 * time.Second,
	}
}

// Flusher owns an awrite.Buffer and keeps it drained in the background. The
// Buffer itself stays single-owner: the Flusher is that owner, and it
// serializes every fill and flush behind one mutex.
type Flusher struct {
	config Config

	mu  sync.Mutex
	buf *awrite.Buffer

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closed int32 // atomic
}

// New creates a Flusher owning buf. The caller must not use buf directly
// afterwards.
func New(buf *awrite.Buffer, config Config) (*Flusher, error) {
	if config.FlushTimeout <= 0 {
		config.FlushTimeout = DefaultConfig().FlushTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Flusher{
		config: config,
		buf:    buf,
		ctx:    ctx,
		cancel: cancel,
	}

	if config.Schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(config.Schedule, f.backgroundFlush); err != nil {
			cancel()
			return nil, fmt.Errorf("invalid flush schedule %q: %w", config.Schedule, err)
		}
		f.cron = c
		c.Start()
	}

	if config.FlushInterval > 0 {
		f.wg.Add(1)
		go f.flushLoop()
	}

	return f, nil
}

// Write stages p, flushing first when it would not fit in the remaining
// scratch capacity. Payloads larger than the scratch region itself are
// rejected with the core's sync capacity error.
func (f *Flusher) Write(p []byte) (int, error) {
	if f.IsClosed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(p) > f.buf.Cap() {
		return 0, &awrite.Error{Kind: awrite.KindSync, Err: awrite.ErrBufferFull}
	}
	if f.buf.Len()+len(p) > f.buf.Cap() {
		ctx, cancel := context.WithTimeout(context.Background(), f.config.FlushTimeout)
		defer cancel()
		if err := f.flushLocked(ctx); err != nil {
			return 0, err
		}
	}

	return f.buf.Write(p)
}

// WriteString stages s.
func (f *Flusher) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// Flush flushes any staged bytes now, bounded by ctx.
func (f *Flusher) Flush(ctx context.Context) error {
	if f.IsClosed() {
		return ErrClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushLocked(ctx)
}

// Staged returns the number of bytes currently staged and unflushed.
func (f *Flusher) Staged() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.Len()
}

// IsClosed reports whether Close has been called.
func (f *Flusher) IsClosed() bool {
	return atomic.LoadInt32(&f.closed) != 0
}

// Close stops background flushing and performs one final flush of any staged
// bytes. It is safe to call more than once.
func (f *Flusher) Close() error {
	if !atomic.CompareAndSwapInt32(&f.closed, 0, 1) {
		return nil
	}

	if f.cron != nil {
		// Stop returns a context that is done once running jobs finish.
		<-f.cron.Stop().Done()
	}
	f.cancel()
	f.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), f.config.FlushTimeout)
	defer cancel()

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushLocked(ctx)
}

// flushLocked flushes staged bytes and fires callbacks. Caller holds f.mu.
func (f *Flusher) flushLocked(ctx context.Context) error {
	staged := f.buf.Len()
	if staged == 0 {
		return nil
	}
	if err := f.buf.Flush(ctx); err != nil {
		return err
	}
	if f.config.OnFlush != nil {
		f.config.OnFlush(staged)
	}
	return nil
}

// backgroundFlush is the trigger shared by the interval loop and cron jobs.
func (f *Flusher) backgroundFlush() {
	if f.IsClosed() {
		return
	}

	ctx, cancel := context.WithTimeout(f.ctx, f.config.FlushTimeout)
	defer cancel()

	f.mu.Lock()
	err := f.flushLocked(ctx)
	f.mu.Unlock()

	if err != nil && f.config.OnError != nil {
		f.config.OnError(err)
	}
}

func (f *Flusher) flushLoop() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.config.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.backgroundFlush()
		case <-f.ctx.Done():
			return
		}
	}
}
