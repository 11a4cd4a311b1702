package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAcquireTempDirCreatesAndReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "temp")

	temp, err := AcquireTempDir(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Fatalf("expected folder at %s: %v", path, err)
	}

	first := temp.NewFile(".jpg")
	second := temp.NewFile(".jpg")
	if first == second {
		t.Fatalf("expected unique names, got %s twice", first)
	}
	if filepath.Dir(first) != path || !strings.HasSuffix(first, ".jpg") {
		t.Fatalf("unexpected temp file path %s", first)
	}
	if err := os.WriteFile(first, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := temp.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected folder removed, stat err: %v", err)
	}
}

func TestAcquireTempDirClearsExisting(t *testing.T) {
	path := t.TempDir()
	if err := os.MkdirAll(filepath.Join(path, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(path, "old.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := AcquireTempDir(path); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty folder, found %d entries", len(entries))
	}
}

func TestAcquireTempDirRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := AcquireTempDir(path); err == nil {
		t.Fatalf("expected error for file path")
	}
}
