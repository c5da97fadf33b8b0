package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || got != "v" {
		t.Fatalf("Get() = %q, %v; want %q, true", got, ok, "v")
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	_, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Fatal("Get() reported hit for missing key")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v", time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Fatal("Get() returned expired entry")
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.sweep(time.Now().Add(365 * 24 * time.Hour))

	_, ok, _ := s.Get(ctx, "k")
	if !ok {
		t.Fatal("entry with zero TTL was evicted")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("Get() returned deleted entry")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() on missing key error = %v", err)
	}
}

func TestMemoryStoreSweepEvictsExpired(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	_ = s.Set(ctx, "old", "v", time.Millisecond)
	_ = s.Set(ctx, "fresh", "v", time.Hour)

	s.sweep(time.Now().Add(time.Second))

	s.mu.RLock()
	_, oldThere := s.entries["old"]
	_, freshThere := s.entries["fresh"]
	s.mu.RUnlock()

	if oldThere {
		t.Fatal("sweep left expired entry in place")
	}
	if !freshThere {
		t.Fatal("sweep evicted a live entry")
	}
}
