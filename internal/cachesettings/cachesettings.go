// Package cachesettings owns the small settings document kept in the
// application cache directory (window geometry remembered across runs).
//
// Loading never fails: a missing, unreadable or malformed file yields the
// all-default document. Saving is best-effort and returns typed errors the
// caller is expected to log and ignore.
package cachesettings

import (
	"WebAppHub/internal/logger"
	"WebAppHub/internal/paths"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
	"gopkg.in/yaml.v3"
)

var (
	// ErrIO is wrapped by Save when the cache directory or file cannot be written.
	ErrIO = errors.New("cache settings I/O error")
	// ErrSerialize is wrapped by Save when the document cannot be encoded.
	ErrSerialize = errors.New("cache settings serialization error")
)

// WindowSettings is the last known window geometry. Zero width or height means unset.
type WindowSettings struct {
	Height    int  `yaml:"height"`
	Width     int  `yaml:"width"`
	Maximized bool `yaml:"maximized"`
}

// Document is the persisted shape of settings.yml.
type Document struct {
	Window WindowSettings `yaml:"window"`
}

// Default returns the all-default document.
func Default() Document {
	return Document{}
}

// Store holds the settings document for the lifetime of the process.
// It is not safe for concurrent use; the window session owns it.
type Store struct {
	doc  Document
	path string
}

// Load reads <cacheDir>/settings.yml. Any failure is logged and replaced by
// the default document.
func Load(ctx context.Context, cacheDir string) *Store {
	path := paths.CacheSettingsFilePath(cacheDir)
	return &Store{
		doc:  readDocument(ctx, path),
		path: path,
	}
}

func readDocument(ctx context.Context, path string) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug(ctx, "No cached settings at %s, using defaults", path)
		} else {
			logger.Warn(ctx, "Failed to read cached settings file %s: %v", path, err)
		}
		return Default()
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logger.Warn(ctx, "Failed to parse cached settings yaml file %s: %v", path, err)
		return Default()
	}
	return doc
}

// Path returns the resolved settings file path.
func (s *Store) Path() string {
	return s.path
}

// Settings returns a copy of the current document.
func (s *Store) Settings() Document {
	return s.doc
}

// SanitizedWindowGeometry returns the cached window geometry made safe for the
// window: unset dimensions become the defaults, undersized ones the minimums.
func (s *Store) SanitizedWindowGeometry(defaultWidth, defaultHeight, minWidth, minHeight int) (width, height int, maximized bool) {
	g := Sanitize(s.doc.Window, Size{defaultWidth, defaultHeight}, Size{minWidth, minHeight})
	return g.Width, g.Height, g.Maximized
}

// SetWindowSize records the geometry as-is. Clamping happens on read.
func (s *Store) SetWindowSize(width, height int, maximized bool) {
	s.doc.Window.Width = width
	s.doc.Window.Height = height
	s.doc.Window.Maximized = maximized
}

// Reset replaces the document with defaults and saves it. A save failure is
// logged, not returned.
func (s *Store) Reset(ctx context.Context) {
	s.doc = Default()
	if err := s.Save(ctx); err != nil {
		logger.Warn(ctx, "Failed to save reset cache settings: %v", err)
	}
}

// Save writes the document to its path, creating the cache directory first.
// The file is replaced atomically.
func (s *Store) Save(ctx context.Context) error {
	logger.Debug(ctx, "Saving settings in cache: %s", s.path)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create cache dir %s: %w", ErrIO, dir, err)
	}

	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	if err := atomicwriter.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write settings file %s: %w", ErrIO, s.path, err)
	}
	return nil
}
