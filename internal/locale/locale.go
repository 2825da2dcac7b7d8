package locale

import (
	"WebAppHub/internal/constants"
	"WebAppHub/internal/envutil"
	"WebAppHub/internal/logger"
	"context"
	"strings"
)

// Resolve picks the supported locale for language. An exact match wins;
// otherwise a supported locale with the same stem ("en_GB" -> "en") is used,
// the last such one if several match. It returns "" when nothing matches.
func Resolve(language string, supported []string) string {
	if language == "" {
		return ""
	}
	stem := stemOf(language)

	resolved := ""
	for _, lang := range supported {
		if lang == language {
			return lang
		}
		if stemOf(lang) == stem {
			resolved = stemOf(lang)
		}
	}
	return resolved
}

func stemOf(lang string) string {
	stem, _, _ := strings.Cut(lang, "_")
	return stem
}

// Init resolves the user's LANG against the bundled locales, falling back to
// the default locale, and logs the result.
func Init(ctx context.Context) string {
	current := constants.DefaultLocale
	if language, ok := envutil.Language(); ok {
		logger.Debug(ctx, "Trying to use user locale %s", language)
		if resolved := Resolve(language, constants.SupportedLocales); resolved != "" {
			current = resolved
		}
	}
	logger.Info(ctx, "Init locale: %s", current)
	return current
}
