package paths

import (
	"WebAppHub/internal/constants"
	"WebAppHub/internal/version"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	// CacheHomeOverride allows overriding the cache home for tests.
	CacheHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// RuntimeDirOverride allows overriding the runtime directory for tests.
	RuntimeDirOverride string
)

// GetCacheDir returns the absolute path to the webapphub cache directory
// (e.g., ~/.cache/webapphub). Regenerable state such as window geometry lives here.
func GetCacheDir() string {
	if CacheHomeOverride != "" {
		return CacheHomeOverride
	}
	return filepath.Join(xdg.CacheHome, constants.AppDirName)
}

// CacheSettingsFilePath returns the settings file path for a given cache directory.
func CacheSettingsFilePath(cacheDir string) string {
	return filepath.Join(cacheDir, constants.CacheSettingsFileName)
}

// GetStateDir returns the absolute path to the webapphub state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	return filepath.Join(xdg.StateHome, constants.AppDirName)
}

// GetLogFilePath returns the absolute path to the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// GetRuntimeDir returns the directory holding the single-instance lock.
// xdg falls back to a temp directory when XDG_RUNTIME_DIR is unset.
func GetRuntimeDir() string {
	if RuntimeDirOverride != "" {
		return RuntimeDirOverride
	}
	return xdg.RuntimeDir
}

// GetLockFilePath returns the path of the single-instance lock file.
func GetLockFilePath() string {
	return filepath.Join(GetRuntimeDir(), version.AppID+constants.LockFileSuffix)
}
