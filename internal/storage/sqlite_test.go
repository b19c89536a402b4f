package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetSetRemove(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Set("k", "v1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", "v2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; expected v2", v, ok, err)
	}

	if err := store.Remove("k"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if err := store.Remove("k"); err != nil {
		t.Errorf("Remove() of a missing key should succeed, got %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Remove")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	lb := NewLeaderboard(store)
	lb.AppendScore("guest", 42)
	lb.RecordBestScore("guest", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	lb = NewLeaderboard(store)
	if top := lb.TopScores(10); len(top) != 1 || top[0].Score != 42 {
		t.Errorf("TopScores after reopen = %+v", top)
	}
	if best := lb.BestScore("guest"); best != 42 {
		t.Errorf("BestScore after reopen = %d, expected 42", best)
	}
}

func TestStoreKeys(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, k := range []string{BestScorePrefix + "bob", BestScorePrefix + "alice", LeaderboardKey} {
		if err := store.Set(k, "1"); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := store.Keys(BestScorePrefix)
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != BestScorePrefix+"alice" || keys[1] != BestScorePrefix+"bob" {
		t.Errorf("Keys() = %v", keys)
	}
}
