// Package window implements the host side of the cache settings lifecycle:
// what the application window does with the store when it opens, closes,
// and when the user resets the application.
package window

import (
	"WebAppHub/internal/cachesettings"
	"WebAppHub/internal/constants"
	"WebAppHub/internal/logger"
	"context"
)

// Session owns the cache settings store for one application run.
type Session struct {
	cacheDir string
	defaults cachesettings.Size
	minimum  cachesettings.Size
	store    *cachesettings.Store
	open     bool
}

// Option configures a Session.
type Option func(*Session)

// WithDefaultSize sets the size used when nothing is cached.
func WithDefaultSize(width, height int) Option {
	return func(s *Session) {
		s.defaults = cachesettings.Size{Width: width, Height: height}
	}
}

// WithMinimumSize sets the smallest size the window will be given.
func WithMinimumSize(width, height int) Option {
	return func(s *Session) {
		s.minimum = cachesettings.Size{Width: width, Height: height}
	}
}

// NewSession loads the cache settings from cacheDir.
func NewSession(ctx context.Context, cacheDir string, opts ...Option) *Session {
	s := &Session{
		cacheDir: cacheDir,
		defaults: cachesettings.Size{Width: constants.DefaultWindowWidth, Height: constants.DefaultWindowHeight},
		minimum:  cachesettings.Size{Width: constants.MinWindowWidth, Height: constants.MinWindowHeight},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = cachesettings.Load(ctx, cacheDir)
	return s
}

// Store returns the session's settings store.
func (s *Session) Store() *cachesettings.Store {
	return s.store
}

// IsOpen reports whether Open has been called without a matching Close.
func (s *Session) IsOpen() bool {
	return s.open
}

// Open returns the geometry to size the window with before it is first presented.
func (s *Session) Open(ctx context.Context) cachesettings.Geometry {
	w, h, maximized := s.store.SanitizedWindowGeometry(s.defaults.Width, s.defaults.Height, s.minimum.Width, s.minimum.Height)
	s.open = true
	logger.Debug(ctx, "Opening window at %dx%d (maximized: %t)", w, h, maximized)
	return cachesettings.Geometry{Width: w, Height: h, Maximized: maximized}
}

// Close records the window geometry and saves it before the window goes away.
// A failed save is logged; the close always proceeds.
func (s *Session) Close(ctx context.Context, width, height int, maximized bool) {
	s.store.SetWindowSize(width, height, maximized)
	if err := s.store.Save(ctx); err != nil {
		logger.Warn(ctx, "Failed to save window settings: %v", err)
	}
	s.open = false
	logger.Debug(ctx, "Closed window at %dx%d (maximized: %t)", width, height, maximized)
}

// Restart resets the cache settings to defaults and reloads dependent state
// from disk, as the reset-application action does.
func (s *Session) Restart(ctx context.Context) cachesettings.Geometry {
	s.open = false
	s.store.Reset(ctx)
	s.store = cachesettings.Load(ctx, s.cacheDir)
	logger.Info(ctx, "Application state reset")
	return s.Open(ctx)
}
