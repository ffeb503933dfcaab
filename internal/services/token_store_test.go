package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore().(*memoryTokenStore)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Revoke(ctx, "a", now.Add(time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := store.Revoke(ctx, "stale", now.Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke stale: %v", err)
	}

	if ok, _ := store.IsRevoked(ctx, "a"); !ok {
		t.Fatalf("expected a to be revoked")
	}
	if ok, _ := store.IsRevoked(ctx, "stale"); ok {
		t.Fatalf("already-expired token should not be tracked")
	}
	if ok, _ := store.IsRevoked(ctx, "b"); ok {
		t.Fatalf("unknown token reported revoked")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := store.IsRevoked(ctx, "a"); ok {
		t.Fatalf("revocation should lapse with the token's expiry")
	}
	if err := store.Revoke(ctx, "c", now.Add(time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, ok := store.revoked["a"]; ok {
		t.Fatalf("expired entries should be pruned on Revoke")
	}
}
