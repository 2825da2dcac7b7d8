package constants

// Folder Names
const (
	AppDirName = "webapphub"
)

// File Names
const (
	CacheSettingsFileName = "settings.yml"
	LogFileName           = "webapphub.log"
	LockFileSuffix        = ".lock"
)

// Window geometry used by the host window when nothing usable is cached.
const (
	DefaultWindowWidth  = 980
	DefaultWindowHeight = 840
	MinWindowWidth      = 600
	MinWindowHeight     = 500
)

// Environment Variables
const (
	LogLevelEnv     = "WAH_LOG"
	DevcontainerEnv = "RUN_IN_VSCODE_DEVCONTAINER"
	ContainerEnv    = "container"
	LanguageEnv     = "LANG"
)

// Locales
const (
	DefaultLocale = "en"
)

// SupportedLocales lists the locales the UI ships translations for.
var SupportedLocales = []string{"en", "nl"}
