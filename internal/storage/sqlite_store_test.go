package storage

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stillday.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Write("rec", record{Name: "hello", Count: 7}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got record
	if !store.Read("rec", &got) {
		t.Fatal("expected read to find the key")
	}
	if got.Name != "hello" || got.Count != 7 {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Write("rec", record{Name: "first"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Write("rec", record{Name: "second"}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	var got record
	if !store.Read("rec", &got) || got.Name != "second" {
		t.Errorf("expected overwritten value, got %+v", got)
	}
}

func TestSQLiteStoreReadFailsSoft(t *testing.T) {
	store := newTestSQLiteStore(t)

	var got record
	if store.Read("absent", &got) {
		t.Error("expected read of absent key to return false")
	}
}

func TestSQLiteStoreLoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected load of uninitialized storage to fail")
	}
}

func TestSQLiteStoreValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillday.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Write("rec", record{Name: "persisted"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer reopened.Close()

	var got record
	if !reopened.Read("rec", &got) || got.Name != "persisted" {
		t.Errorf("expected persisted value, got %+v", got)
	}
}

func TestSQLiteStoreNotifiesSubscribers(t *testing.T) {
	store := newTestSQLiteStore(t)

	calls := 0
	store.Subscribe("rec", func() { calls++ })

	if err := store.Write("rec", record{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}
