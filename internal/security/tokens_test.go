package security

import (
	"testing"
	"time"
)

func TestTokenStoreExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }

	store := NewTokenStore(clock)
	id := NewTokenID()
	store.Put(id, now.Add(time.Hour))

	if !store.Valid(id) {
		t.Error("freshly issued token should be valid")
	}

	now = now.Add(2 * time.Hour)
	if store.Valid(id) {
		t.Error("expired token should be invalid")
	}
}

func TestTokenStoreRevoke(t *testing.T) {
	store := NewTokenStore(nil)
	id := NewTokenID()
	store.Put(id, time.Now().Add(time.Hour))

	store.Revoke(id)
	if store.Valid(id) {
		t.Error("revoked token should be invalid")
	}
}

func TestTokenStoreSweep(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	store := NewTokenStore(clock)

	store.Put("live", now.Add(time.Hour))
	store.Put("dead1", now.Add(-time.Minute))
	store.Put("dead2", now.Add(-time.Hour))

	if removed := store.Sweep(); removed != 2 {
		t.Errorf("Sweep() removed %d tokens, want 2", removed)
	}
	if !store.Valid("live") {
		t.Error("unexpired token should survive a sweep")
	}
}

func TestTokenStoreUnknown(t *testing.T) {
	store := NewTokenStore(nil)
	if store.Valid("never-issued") {
		t.Error("unknown token should be invalid")
	}
}
