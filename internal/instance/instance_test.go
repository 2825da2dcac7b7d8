package instance

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAcquireIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "app.lock")

	first, err := Acquire(path)
	if err != nil {
		t.Fatalf("First Acquire failed: %v", err)
	}

	if _, err := Acquire(path); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	again, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	if again.Path() != path {
		t.Errorf("Unexpected lock path %s", again.Path())
	}
	_ = again.Release()
}
