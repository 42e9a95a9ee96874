package kvstore

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), "test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("k1", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get("k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestStoreMissingKeyIsNil(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Get("absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("missing key must be nil, got %q", got)
	}
}

func TestStoreDeleteAndSize(t *testing.T) {
	store := openTestStore(t)

	_ = store.Set("k1", []byte("v1"))
	_ = store.Set("k2", []byte("v2"))

	if n, err := store.Size(); err != nil || n != 2 {
		t.Fatalf("size = %d, %v", n, err)
	}

	if err := store.Delete("k1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, err := store.Size(); err != nil || n != 1 {
		t.Fatalf("size after delete = %d, %v", n, err)
	}
}
