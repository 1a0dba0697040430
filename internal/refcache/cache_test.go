package refcache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey_StableForUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	if err := os.WriteFile(path, []byte("word\tjoy\t1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if Key(path) != Key(path) {
		t.Error("expected identical keys for an unchanged file")
	}
	if !strings.HasPrefix(Key(path), "emotia:v1:") {
		t.Errorf("expected versioned key prefix, got %q", Key(path))
	}
}

func TestKey_ChangesWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	if err := os.WriteFile(path, []byte("word\tjoy\t1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	before := Key(path)

	// Grow the file and push mtime forward; either is enough to turn the key
	if err := os.WriteFile(path, []byte("word\tjoy\t1\nother\tfear\t1\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := os.Chtimes(path, time.Now(), time.Now().Add(time.Second)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if Key(path) == before {
		t.Error("expected key to change after the file changed")
	}
}

func TestKey_DiffersByPath(t *testing.T) {
	dir := t.TempDir()
	if Key(filepath.Join(dir, "a.txt")) == Key(filepath.Join(dir, "b.txt")) {
		t.Error("expected different keys for different paths")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(time.Minute, 0)

	if _, ok := m.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	m.Set("k", []string{"taxes", "jobs"}, time.Minute)
	v, ok := m.Get("k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	words, ok := v.([]string)
	if !ok || len(words) != 2 {
		t.Errorf("expected stored slice back, got %v", v)
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	m.Set("k", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := m.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}
