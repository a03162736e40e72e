package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewWithClient(rdb, time.Minute)
}

func TestSpamCountRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	if _, ok := c.GetSpamCount(ctx, "+15551234"); ok {
		t.Fatal("expected miss for unseen number")
	}

	c.SetSpamCount(ctx, "+15551234", 7)

	count, ok := c.GetSpamCount(ctx, "+15551234")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if count != 7 {
		t.Fatalf("expected count 7, got %d", count)
	}
}

func TestInvalidateSpamCount(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	c.SetSpamCount(ctx, "+15551234", 3)
	c.InvalidateSpamCount(ctx, "+15551234")

	if _, ok := c.GetSpamCount(ctx, "+15551234"); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestNilClientIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *Client

	if _, ok := c.GetSpamCount(ctx, "+15551234"); ok {
		t.Fatal("nil client should always miss")
	}
	c.SetSpamCount(ctx, "+15551234", 1)
	c.InvalidateSpamCount(ctx, "+15551234")
	if err := c.Close(); err != nil {
		t.Fatalf("nil close should not error: %v", err)
	}
}
