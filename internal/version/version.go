package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "WebAppHub"

// AppID is the reverse-DNS application identifier used for the desktop entry,
// the icon name and the single-instance lock.
var AppID = "io.github.webapphub.WebAppHub"

// CommandName is the name of the executable command (e.g., "webapphub").
// It is initialized dynamically from the executable filename.
var CommandName = "webapphub"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X WebAppHub/internal/version.Version=1.2.0"
var Version = "0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

// Developer is shown in the about output.
var Developer = "WebAppHub contributors"

func init() {
	// Dynamically determine the command name from the executable
	exePath := os.Args[0]
	baseName := filepath.Base(exePath)
	ext := filepath.Ext(baseName)
	CommandName = strings.TrimSuffix(baseName, ext)

	// Fallback for dev runs (go run, test binaries)
	if strings.EqualFold(CommandName, ApplicationName) || strings.EqualFold(CommandName, "main") || strings.HasSuffix(CommandName, ".test") {
		CommandName = "webapphub"
	}
}
