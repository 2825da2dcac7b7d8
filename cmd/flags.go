package cmd

import (
	"github.com/spf13/pflag"
)

// InitFlags defines the pflags used for argument validation and help.
// It is safe to call more than once.
func InitFlags() {
	if pflag.Lookup("help") != nil {
		return
	}

	// Modifiers
	pflag.BoolP("verbose", "v", false, "Verbose output")
	pflag.BoolP("debug", "x", false, "Debug output")

	pflag.BoolP("help", "h", false, "Show help")
	pflag.BoolP("version", "V", false, "Show version")

	// Cache settings / window
	pflag.BoolP("settings-show", "s", false, "Show cached settings")
	pflag.StringP("geometry", "g", "", "Show sanitized window geometry (default-width default-height min-width min-height)")
	pflag.StringP("window-close", "w", "", "Record window geometry as the window does on close (width height [maximized])")
	pflag.BoolP("reset", "R", false, "Reset cached settings and reload application state")

	// Desktop integration
	pflag.BoolP("release-notes", "r", false, "Show release notes")
	pflag.BoolP("categories", "c", false, "List desktop categories")
	pflag.BoolP("open-cache", "o", false, "Open the cache folder on the host")
}
