package cache

import (
	"testing"
	"time"
)

func TestTTLGetSet(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewTTL[string, int](time.Minute)
	c.now = func() time.Time { return now }

	if _, ok := c.Get("k"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("k", 42)
	got, ok := c.Get("k")
	if !ok || got != 42 {
		t.Fatalf("Get = %d, %v; want 42, true", got, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewTTL[string, string](time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")

	now = now.Add(time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry at exactly ttl should still hit")
	}

	now = now.Add(time.Nanosecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry past ttl should miss")
	}
}

func TestTTLDisabled(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		c := NewTTL[string, int](ttl)
		c.Set("k", 1)
		if _, ok := c.Get("k"); ok {
			t.Fatalf("ttl %v should disable caching", ttl)
		}
	}
}

func TestTTLNilReceiver(t *testing.T) {
	var c *TTL[string, int]
	if _, ok := c.Get("k"); ok {
		t.Fatal("nil cache should miss")
	}
	c.Set("k", 1) // must not panic
}
