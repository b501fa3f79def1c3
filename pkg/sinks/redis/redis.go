// Package redis provides an awrite.Sink that appends each flushed payload to
// a Redis list, turning the list into a durable queue of transfers for a
// downstream consumer.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis sink.
type Config struct {
	// Client is the Redis client used for all operations.
	Client redis.UniversalClient

	// Key is the Redis list each flushed payload is appended to.
	Key string

	// Timeout bounds each Redis operation (defaults to 500ms).
	Timeout time.Duration

	// KeyTTL, if nonzero, refreshes the list's expiry after each append.
	KeyTTL time.Duration
}

// DefaultConfig returns a default Redis sink configuration. Client and Key
// must still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Timeout: 500 * time.Millisecond,
	}
}

// ConfigError represents a sink configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "redis sink config error: " + e.Message
}

// OpError represents a failed Redis operation.
type OpError struct {
	Operation string
	Err       error
}

func (e *OpError) Error() string {
	return "redis error in " + e.Operation + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Sink appends flushed payloads to a Redis list.
type Sink struct {
	config Config
}

// New creates a Redis sink from the given configuration.
func New(config Config) (*Sink, error) {
	if config.Client == nil {
		return nil, &ConfigError{"redis client is required"}
	}
	if config.Key == "" {
		return nil, &ConfigError{"key is required"}
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Sink{config: config}, nil
}

// WriteAll implements awrite.Sink. Each call appends one list entry holding
// the whole payload; the payload is copied before the command is issued, so
// the caller's scratch region can be reused immediately.
func (s *Sink) WriteAll(ctx context.Context, p []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	payload := make([]byte, len(p))
	copy(payload, p)

	if s.config.KeyTTL > 0 {
		pipe := s.config.Client.Pipeline()
		pipe.RPush(ctx, s.config.Key, payload)
		pipe.Expire(ctx, s.config.Key, s.config.KeyTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			return &OpError{"rpush", err}
		}
		return nil
	}

	if err := s.config.Client.RPush(ctx, s.config.Key, payload).Err(); err != nil {
		return &OpError{"rpush", err}
	}
	return nil
}

// Len returns the current length of the backing list.
func (s *Sink) Len(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	n, err := s.config.Client.LLen(ctx, s.config.Key).Result()
	if err != nil {
		return 0, &OpError{"llen", err}
	}
	return n, nil
}

// Reset deletes the backing list.
func (s *Sink) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.config.Client.Del(ctx, s.config.Key).Err(); err != nil {
		return &OpError{"del", err}
	}
	return nil
}
