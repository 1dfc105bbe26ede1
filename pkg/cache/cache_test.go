package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "a", []byte("png bytes"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit {
		t.Fatalf("Get(a) = hit %v, err %v", hit, err)
	}
	if string(data) != "png bytes" {
		t.Errorf("Get(a) = %q", data)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry was returned")
	}
}

func TestFileCacheStatsAndClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := c.Set(ctx, fmt.Sprintf("k%d", i), []byte("data"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	n, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if n != 3 || size <= 0 {
		t.Errorf("Stats = %d entries, %d bytes", n, size)
	}

	removed, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 3 {
		t.Errorf("Clear removed %d, want 3", removed)
	}
	if n, _, _ := c.Stats(); n != 0 {
		t.Errorf("%d entries left after Clear", n)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := ArtifactKeyOpts{BytesPerRow: 32, GroupSize: 4, Color: "#000000", Metrics: "m1"}

	tests := []struct {
		name   string
		hash   string
		addr   int64
		modify func(*ArtifactKeyOpts)
	}{
		{"columns", "h", 0, func(o *ArtifactKeyOpts) { o.BytesPerRow = 16 }},
		{"fade", "h", 0, func(o *ArtifactKeyOpts) { o.FadeIn = 2 }},
		{"color", "h", 0, func(o *ArtifactKeyOpts) { o.Color = "#ff0000" }},
		{"font", "h", 0, func(o *ArtifactKeyOpts) { o.Metrics = "m2" }},
		{"address", "h", 0x20, func(*ArtifactKeyOpts) {}},
		{"data", "other", 0, func(*ArtifactKeyOpts) {}},
	}

	ref := k.ArtifactKey("h", 0, base)
	if !strings.HasPrefix(ref, "artifact:") {
		t.Errorf("ArtifactKey = %q, want artifact: prefix", ref)
	}
	if ref != k.ArtifactKey("h", 0, base) {
		t.Error("ArtifactKey should be deterministic")
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.modify(&opts)
			if k.ArtifactKey(tt.hash, tt.addr, opts) == ref {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}

	m1 := k.MetricsKey(MetricsKeyOpts{FontDigest: "d", Engine: "opentype", Size: 10})
	m2 := k.MetricsKey(MetricsKeyOpts{FontDigest: "d", Engine: "opentype", Size: 12})
	if m1 == m2 {
		t.Error("Different sizes should produce different metrics keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "tenant:")
	plain := NewDefaultKeyer()
	opts := ArtifactKeyOpts{BytesPerRow: 32}

	if got, want := scoped.ArtifactKey("h", 0, opts), "tenant:"+plain.ArtifactKey("h", 0, opts); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
	if got := NewScopedKeyer(nil, "p:").MetricsKey(MetricsKeyOpts{}); !strings.HasPrefix(got, "p:metrics:") {
		t.Errorf("MetricsKey with nil inner = %q", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"miss", redis.Nil, false},
		{"canceled", context.Canceled, false},
		{"eof", io.EOF, true},
		{"closed", redis.ErrClosed, true},
		{"other", errors.New("WRONGTYPE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			if IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable(classify(%v)) = %v, want %v", tt.err, !tt.retryable, tt.retryable)
			}
			if tt.retryable && !errors.Is(err, ErrNetwork) {
				t.Errorf("retryable error should wrap ErrNetwork: %v", err)
			}
		})
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url"); err == nil {
		t.Error("expected error for malformed URL")
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	saved := RetryDelay
	RetryDelay = time.Millisecond
	defer func() { RetryDelay = saved }()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err %v, calls %d", err, calls)
	}

	permanent := errors.New("permanent")
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return permanent
	})
	if err != permanent || calls != 1 {
		t.Errorf("non-retryable: err %v, calls %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err %v, calls %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err %v, calls %d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
