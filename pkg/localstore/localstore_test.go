package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	in := map[string]int{"a": 1, "b": 2}
	if err := store.Save("state", in); err != nil {
		t.Fatal(err)
	}

	var out map[string]int
	if !store.Load("state", &out) {
		t.Fatal("Load should succeed for a saved key")
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var out []int
	if store.Load("never-saved", &out) {
		t.Error("Load should report false for a missing key")
	}
}

func TestLoad_CorruptPayloadFailsOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("not json at all"), 0644); err != nil {
		t.Fatal(err)
	}

	var out []int
	if store.Load("state", &out) {
		t.Error("Load should report false for a corrupt payload")
	}
}

func TestSave_Overwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save("k", []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("k", []int{}); err != nil {
		t.Fatal(err)
	}

	var out []int
	if !store.Load("k", &out) {
		t.Fatal("Load should succeed")
	}
	if len(out) != 0 {
		t.Errorf("got %v, want empty slice", out)
	}
}

func TestDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save("k", 1); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatal(err)
	}
	var out int
	if store.Load("k", &out) {
		t.Error("deleted key should not load")
	}
	// deleting a missing key is not an error
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete on missing key: %v", err)
	}
}
