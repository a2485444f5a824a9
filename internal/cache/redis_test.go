package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis tests need a running Redis/Valkey server.
// Set REDIS_ADDRESS (e.g., "localhost:6379") to enable them.

func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis tests: set REDIS_ADDRESS to enable")
	}
	return addr
}

// flushTestRedisDB clears DB 15 so tests start with a clean slate.
func flushTestRedisDB(t *testing.T, addr string) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis test DB: %v", err)
	}
}

func newTestRedisCache(t *testing.T, ttl time.Duration) Cache {
	t.Helper()
	addr := skipIfNoRedis(t)
	flushTestRedisDB(t, addr)
	c, err := New("redis", ProviderConfig{
		Size:         100,
		TTL:          ttl,
		RedisAddress: addr,
		RedisDB:      15,
	})
	if err != nil {
		t.Fatalf("New redis cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_GetSet(t *testing.T) {
	c := newTestRedisCache(t, 10*time.Second)
	ctx := context.Background()

	if val, ok := c.Get(ctx, "search:batman"); ok || val != nil {
		t.Fatalf("Expected miss for new key, got %q", val)
	}

	c.Set(ctx, "search:batman", []byte("hello"))
	val, ok := c.Get(ctx, "search:batman")
	if !ok || string(val) != "hello" {
		t.Fatalf("Expected 'hello', got %q (hit=%v)", val, ok)
	}
}

func TestRedisCache_Len(t *testing.T) {
	c := newTestRedisCache(t, 10*time.Second)
	ctx := context.Background()

	if n := c.Len(ctx); n != 0 {
		t.Fatalf("Expected Len 0 on clean DB, got %d", n)
	}

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))

	if n := c.Len(ctx); n != 2 {
		t.Fatalf("Expected Len 2, got %d", n)
	}
}

func TestRedisCache_Expiry(t *testing.T) {
	c := newTestRedisCache(t, 100*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "short", []byte("lived"))
	time.Sleep(300 * time.Millisecond)

	if _, ok := c.Get(ctx, "short"); ok {
		t.Fatal("Expected entry to expire after TTL")
	}
}
