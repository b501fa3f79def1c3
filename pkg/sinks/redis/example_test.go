package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/quartiq/awrite/pkg/awrite"
)

// Example_basicUsage demonstrates flushing formatted output into a Redis
// list.
func Example_basicUsage() {
	// Create a Redis client (in real usage, use your Redis connection)
	rdb := goredis.NewClient(&goredis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use a test database
	})
	defer func() { _ = rdb.Close() }()

	// Test Redis connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis not available, skipping example")
		return
	}

	sink, err := New(Config{
		Client: rdb,
		Key:    "diagnostics",
		KeyTTL: time.Hour,
	})
	if err != nil {
		log.Fatalf("Failed to create sink: %v", err)
	}
	defer func() { _ = sink.Reset(ctx) }()

	buf := awrite.NewSize(64, sink)

	// Each successful format-and-send call becomes one list entry.
	_ = awrite.Fprintln(ctx, buf, "sensor=%d value=%.2f", 3, 21.5)
	_ = awrite.Fprintln(ctx, buf, "sensor=%d value=%.2f", 4, 19.0)

	if n, err := sink.Len(ctx); err == nil {
		fmt.Printf("queued payloads: %d\n", n)
	}
}
