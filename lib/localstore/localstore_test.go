package localstore

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Set("accessToken", "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get("accessToken")
	if err != nil || !ok || value != "abc" {
		t.Fatalf("Get = %q ok=%v err=%v, want abc", value, ok, err)
	}

	if err := store.Set("accessToken", "def"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, _, _ = store.Get("accessToken")
	if value != "def" {
		t.Fatalf("overwritten value = %q, want def", value)
	}

	if err := store.Delete("accessToken", "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("accessToken"); ok {
		t.Fatal("key still present after delete")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("theme")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v, want dark", value, ok, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("Open(\"\") succeeded, want error")
	}
}
