package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "sample:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Set then Get
	if err := c.Set(ctx, "sample:abc", []byte(`{"r":40}`), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "sample:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != `{"r":40}` {
		t.Errorf("Get returned %q", data)
	}

	// Expired entries are misses
	if err := c.Set(ctx, "sample:old", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "sample:old")
	if hit {
		t.Error("expired entry should miss")
	}

	// Delete
	if err := c.Delete(ctx, "sample:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "sample:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "sample:gone"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// SampleKey should include the region and grid in the hash
	sk1 := k.SampleKey("imghash", SampleKeyOpts{X: 100, Y: 200, W: 400, H: 300, Grid: 3})
	sk2 := k.SampleKey("imghash", SampleKeyOpts{X: 100, Y: 200, W: 400, H: 300, Grid: 5})
	if sk1 == sk2 {
		t.Error("Different SampleKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(sk1, "sample:") {
		t.Errorf("SampleKey should carry the sample prefix: %s", sk1)
	}

	// Same inputs produce the same key
	sk3 := k.SampleKey("imghash", SampleKeyOpts{X: 100, Y: 200, W: 400, H: 300, Grid: 3})
	if sk1 != sk3 {
		t.Error("SampleKey should be deterministic")
	}

	// PlanKey
	pk1 := k.PlanKey(PlanKeyOpts{OptionsHash: "opts1", BackgroundHash: "bg"})
	pk2 := k.PlanKey(PlanKeyOpts{OptionsHash: "opts2", BackgroundHash: "bg"})
	if pk1 == pk2 {
		t.Error("Different PlanKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(pk1, "plan:") {
		t.Errorf("PlanKey should carry the plan prefix: %s", pk1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "channel:123:")

	// All keys should be prefixed
	sk := scoped.SampleKey("imghash", SampleKeyOpts{Grid: 3})
	if !strings.HasPrefix(sk, "channel:123:sample:") {
		t.Errorf("ScopedKeyer SampleKey should be prefixed: %s", sk)
	}

	pk := scoped.PlanKey(PlanKeyOpts{OptionsHash: "opts"})
	if !strings.HasPrefix(pk, "channel:123:plan:") {
		t.Errorf("ScopedKeyer PlanKey should be prefixed: %s", pk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.SampleKey("img", SampleKeyOpts{})
	if !strings.HasPrefix(key, "prefix:sample:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrBackend)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrBackend)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
