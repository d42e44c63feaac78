package countcache

import (
	"net/url"
	"testing"
	"time"
)

// fakeClock is a settable time source for TTL tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return New(WithTTL(ttl), WithClock(clock.Now)), clock
}

func TestGet_Miss(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	if _, ok := c.Get("stage=lead"); ok {
		t.Error("empty cache should miss")
	}
}

func TestSetGet(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("stage=lead", 42)
	n, ok := c.Get("stage=lead")
	if !ok || n != 42 {
		t.Errorf("got (%d, %v), want (42, true)", n, ok)
	}
}

func TestGet_ExpiresAtTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)
	c.Set("stage=lead", 42)

	clock.Advance(5*time.Minute - time.Second)
	if _, ok := c.Get("stage=lead"); !ok {
		t.Error("entry just inside the TTL should hit")
	}

	clock.Advance(time.Second)
	if _, ok := c.Get("stage=lead"); ok {
		t.Error("entry at exactly the TTL should miss")
	}
}

func TestGet_SweepsAllExpired(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(30 * time.Second)
	c.Set("c", 3)
	clock.Advance(31 * time.Second)

	// a and b are past the TTL, c is not. One Get sweeps both.
	if _, ok := c.Get("c"); !ok {
		t.Error("fresh entry should survive the sweep")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after sweep, got %d", c.Len())
	}
}

func TestSet_RefreshesEntry(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("stage=lead", 42)
	clock.Advance(50 * time.Second)
	c.Set("stage=lead", 45)
	clock.Advance(50 * time.Second)

	n, ok := c.Get("stage=lead")
	if !ok || n != 45 {
		t.Errorf("re-set entry should restart its TTL, got (%d, %v)", n, ok)
	}
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("cleared entry should miss")
	}
}

// Keys come from the canonical query encoding, so trivially different
// filter text that normalizes identically shares an entry, and genuinely
// different filters never collide.
func TestKeyStability(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	a := url.Values{"company": {"Acme"}, "stage": {"lead"}}
	b := url.Values{"stage": {"lead"}, "company": {"Acme"}}
	if a.Encode() != b.Encode() {
		t.Fatalf("insertion order leaked into the key: %q vs %q", a.Encode(), b.Encode())
	}

	c.Set(a.Encode(), 7)
	if n, ok := c.Get(b.Encode()); !ok || n != 7 {
		t.Errorf("equivalent filters should share an entry, got (%d, %v)", n, ok)
	}

	other := url.Values{"company": {"Acme Corp"}, "stage": {"lead"}}
	if _, ok := c.Get(other.Encode()); ok {
		t.Error("different filter values must not collide")
	}
}

func TestDefaultTTL(t *testing.T) {
	if DefaultTTL != 5*time.Minute {
		t.Errorf("default TTL = %v, want 5m", DefaultTTL)
	}
}
