// Package envutil reads the environment variables the application reacts to.
package envutil

import (
	"WebAppHub/internal/constants"
	"fmt"
	"os"
	"strings"
)

// LogLevel returns the value of WAH_LOG normalised to lower case.
// ok is false when the variable is unset or empty.
func LogLevel() (level string, ok bool) {
	level = strings.ToLower(strings.TrimSpace(os.Getenv(constants.LogLevelEnv)))
	return level, level != ""
}

// IsDevcontainer reports whether the process runs inside a VS Code devcontainer.
func IsDevcontainer() bool {
	_, ok := os.LookupEnv(constants.DevcontainerEnv)
	return ok
}

// IsFlatpakContainer reports whether the process runs inside a flatpak sandbox.
func IsFlatpakContainer() bool {
	return os.Getenv(constants.ContainerEnv) == "flatpak"
}

// Language returns the user language from LANG without the encoding suffix
// (e.g., "en_GB.UTF-8" becomes "en_GB").
func Language() (string, bool) {
	lang, ok := os.LookupEnv(constants.LanguageEnv)
	if !ok {
		return "", false
	}
	lang, _, _ = strings.Cut(lang, ".")
	return lang, true
}

// Describe returns a one-line summary of the detected environment for debug logs.
func Describe() string {
	lang, _ := Language()
	return fmt.Sprintf("flatpak=%t devcontainer=%t lang=%q", IsFlatpakContainer(), IsDevcontainer(), lang)
}
