package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempDir is the scoped working folder for re-encoded images.
type TempDir struct {
	path string
}

// AcquireTempDir creates path, or empties it when it already exists.
func AcquireTempDir(path string) (*TempDir, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("temp path %s is not a folder", path)
	case err == nil:
		if err := clearDir(path); err != nil {
			return nil, fmt.Errorf("clear temp folder: %w", err)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create temp folder: %w", err)
		}
	default:
		return nil, err
	}
	return &TempDir{path: path}, nil
}

func (t *TempDir) Path() string {
	return t.path
}

// NewFile returns a fresh, uniquely named path inside the folder. The file
// itself is not created.
func (t *TempDir) NewFile(ext string) string {
	return filepath.Join(t.path, uuid.NewString()+ext)
}

// Release removes the folder and everything in it.
func (t *TempDir) Release() error {
	return os.RemoveAll(t.path)
}

func clearDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
