package window

import (
	"WebAppHub/internal/cachesettings"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenUsesDefaultsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	s := NewSession(ctx, t.TempDir())

	g := s.Open(ctx)

	want := cachesettings.Geometry{Width: 980, Height: 840}
	if g != want {
		t.Errorf("Expected %+v, got %+v", want, g)
	}
	if !s.IsOpen() {
		t.Errorf("Expected session to be open")
	}
}

func TestCloseThenReopenRestoresGeometry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := NewSession(ctx, dir)
	first.Open(ctx)
	first.Close(ctx, 1200, 900, true)
	if first.IsOpen() {
		t.Errorf("Expected session to be closed")
	}

	second := NewSession(ctx, dir)
	g := second.Open(ctx)

	want := cachesettings.Geometry{Width: 1200, Height: 900, Maximized: true}
	if g != want {
		t.Errorf("Expected %+v, got %+v", want, g)
	}
}

func TestCloseStoresRawValuesAndClampsOnOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := NewSession(ctx, dir, WithDefaultSize(950, 850), WithMinimumSize(600, 500))
	s.Close(ctx, 400, 2000, true)

	if got := cachesettings.Load(ctx, dir).Settings().Window.Width; got != 400 {
		t.Errorf("Expected raw width 400 on disk, got %d", got)
	}

	g := NewSession(ctx, dir, WithDefaultSize(950, 850), WithMinimumSize(600, 500)).Open(ctx)
	want := cachesettings.Geometry{Width: 600, Height: 2000, Maximized: true}
	if g != want {
		t.Errorf("Expected %+v, got %+v", want, g)
	}
}

func TestCloseProceedsWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSession(ctx, filepath.Join(blocker, "cache"))
	s.Open(ctx)
	s.Close(ctx, 1000, 800, false)

	if s.IsOpen() {
		t.Errorf("Expected close to proceed despite save failure")
	}
	if got := s.Store().Settings().Window; got.Width != 1000 || got.Height != 800 {
		t.Errorf("Expected in-memory geometry to be kept, got %+v", got)
	}
}

func TestRestartResetsToDefaults(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := NewSession(ctx, dir)
	s.Close(ctx, 1500, 1100, true)

	g := s.Restart(ctx)

	want := cachesettings.Geometry{Width: 980, Height: 840}
	if g != want {
		t.Errorf("Expected %+v after restart, got %+v", want, g)
	}
	if got := cachesettings.Load(ctx, dir).Settings(); got != cachesettings.Default() {
		t.Errorf("Expected defaults on disk after restart, got %+v", got)
	}
}
