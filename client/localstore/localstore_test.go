package localstore

import (
	"path/filepath"
	"testing"
)

func TestStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	type entry struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}

	if err := s.Set("key", entry{Name: "tokyo", N: 2}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	var got entry
	ok, err := s.Get("key", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || got.Name != "tokyo" || got.N != 2 {
		t.Fatalf("unexpected value: ok=%v got=%+v", ok, got)
	}

	if err := s.Delete("key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	ok, err = s.Get("key", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected key gone after delete")
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	var v string
	ok, err := s.Get("absent", &v)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected absent key to report not found")
	}
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := first.Set("key", "value"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	var got string
	ok, err := second.Get("key", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || got != "value" {
		t.Fatalf("expected persisted value, ok=%v got=%q", ok, got)
	}
}

func TestStore_DeleteAbsentKeyIsNoop(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.Delete("absent"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
