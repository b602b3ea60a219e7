package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopstream/storefront/internal/core/ports"
)

func TestFile_RoundTrip(t *testing.T) {
	st, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if err := st.Set("token", []byte("abc")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, err := st.Get("token")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != "abc" {
		t.Fatalf("expected abc, got %q", raw)
	}
}

func TestFile_MissingKey(t *testing.T) {
	st, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if _, err := st.Get("ghost"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestFile_Overwrite(t *testing.T) {
	st, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	_ = st.Set("cart", []byte("v1"))
	_ = st.Set("cart", []byte("v2"))

	raw, err := st.Get("cart")
	if err != nil || string(raw) != "v2" {
		t.Fatalf("expected v2, got %q (%v)", raw, err)
	}
}

func TestFile_Delete(t *testing.T) {
	st, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	_ = st.Set("user", []byte("{}"))
	if err := st.Delete("user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get("user"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("key survived delete")
	}

	// deleting an absent key is not an error
	if err := st.Delete("user"); err != nil {
		t.Fatalf("Delete absent key: %v", err)
	}
}

func TestFile_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	_ = st.Set("token", []byte("abc"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "token.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, filepath.Base(e.Name()))
		}
		t.Fatalf("unexpected files: %v", names)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	st := NewMemory()

	if _, err := st.Get("token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound on empty store")
	}

	_ = st.Set("token", []byte("abc"))
	raw, err := st.Get("token")
	if err != nil || string(raw) != "abc" {
		t.Fatalf("round trip failed: %q %v", raw, err)
	}

	// returned slices are copies
	raw[0] = 'x'
	raw2, _ := st.Get("token")
	if string(raw2) != "abc" {
		t.Fatalf("stored value aliased by caller mutation")
	}

	_ = st.Delete("token")
	if _, err := st.Get("token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("key survived delete")
	}
}
