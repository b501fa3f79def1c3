package redis

import (
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/quartiq/awrite/internal/testutil"
)

func TestNewRequiresClient(t *testing.T) {
	_, err := New(Config{Key: "payloads"})
	testutil.AssertError(t, err)

	var cfgErr *ConfigError
	testutil.AssertEqual(t, errors.As(err, &cfgErr), true)
}

func TestNewRequiresKey(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
	defer func() { _ = client.Close() }()

	_, err := New(Config{Client: client})
	testutil.AssertError(t, err)

	var cfgErr *ConfigError
	testutil.AssertEqual(t, errors.As(err, &cfgErr), true)
}

func TestNewAppliesTimeoutDefault(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
	defer func() { _ = client.Close() }()

	sink, err := New(Config{Client: client, Key: "payloads"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sink.config.Timeout, DefaultConfig().Timeout)
}

func TestOpErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &OpError{Operation: "rpush", Err: inner}

	testutil.AssertEqual(t, errors.Is(err, inner), true)
	testutil.AssertEqual(t, err.Error(), "redis error in rpush: connection refused")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	testutil.AssertEqual(t, config.Timeout, 500*time.Millisecond)
	testutil.AssertEqual(t, config.KeyTTL, time.Duration(0))
}
