package cmd

import (
	"WebAppHub/internal/cachesettings"
	"WebAppHub/internal/desktopfile"
	"WebAppHub/internal/exec"
	"WebAppHub/internal/instance"
	"WebAppHub/internal/logger"
	"WebAppHub/internal/paths"
	"WebAppHub/internal/releasenotes"
	"WebAppHub/internal/strutil"
	"WebAppHub/internal/version"
	"WebAppHub/internal/window"
	"context"
	"fmt"
	"os"
	"strings"
)

// Execute runs the command groups in order, stopping at the first failing one.
// Flags are applied before each group and reset after it.
func Execute(ctx context.Context, groups []CommandGroup) int {
	ranCommand := false

	for _, group := range groups {
		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			}
		}

		cmdStr := version.CommandName
		for _, part := range group.FullSlice() {
			cmdStr += " " + part
		}
		logger.Info(ctx, "%s command: '%s'", version.ApplicationName, cmdStr)

		var err error
		switch group.Command {
		case "-h", "--help":
			target := ""
			if len(group.Args) > 0 {
				target = group.Args[0]
			}
			PrintHelp(target)
		case "-V", "--version":
			handleVersion()
		case "-s", "--settings-show":
			handleSettingsShow(ctx)
		case "-g", "--geometry":
			handleGeometry(ctx, &group)
		case "-w", "--window-close":
			err = handleWindowClose(ctx, &group)
		case "-R", "--reset":
			err = handleReset(ctx)
		case "-r", "--release-notes":
			handleReleaseNotes()
		case "-c", "--categories":
			handleCategories()
		case "-o", "--open-cache":
			err = handleOpenCache(ctx)
		}
		if group.Command != "" {
			ranCommand = true
		}

		logger.ResetLevel()

		if err != nil {
			logger.Error(ctx, "'%s' failed: %v", cmdStr, err)
			return 1
		}
	}

	if !ranCommand {
		PrintHelp("")
	}

	return 0
}

func handleVersion() {
	logger.Display("%s [%s]", version.ApplicationName, version.Version)
	logger.Display("Commit %s, built %s", version.Commit, version.BuildDate)
	logger.Display("Developed by %s", version.Developer)
}

func handleSettingsShow(ctx context.Context) {
	store := cachesettings.Load(ctx, paths.GetCacheDir())
	w := store.Settings().Window

	logger.Display("Settings file: %s", store.Path())
	for _, kv := range []struct {
		key   string
		value any
	}{
		{"window width", w.Width},
		{"window height", w.Height},
		{"window maximized", w.Maximized},
	} {
		logger.Display("  %-18s %v", strutil.CapitalizeAllWords(kv.key)+":", kv.value)
	}
}

func handleGeometry(ctx context.Context, group *CommandGroup) {
	var opts []window.Option
	if len(group.Args) == 4 {
		v := intArgs(group.Args)
		opts = append(opts, window.WithDefaultSize(v[0], v[1]), window.WithMinimumSize(v[2], v[3]))
	}

	g := window.NewSession(ctx, paths.GetCacheDir(), opts...).Open(ctx)
	logger.Display("%d %d %t", g.Width, g.Height, g.Maximized)
}

func handleWindowClose(ctx context.Context, group *CommandGroup) error {
	lock, err := instance.Acquire(paths.GetLockFilePath())
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lock)

	v := intArgs(group.Args[:2])
	maximized := false
	if len(group.Args) == 3 {
		maximized, _ = parseBool(group.Args[2])
	}

	session := window.NewSession(ctx, paths.GetCacheDir())
	session.Open(ctx)
	session.Close(ctx, v[0], v[1], maximized)
	logger.Notice(ctx, "Recorded window geometry %dx%d (maximized: %t)", v[0], v[1], maximized)
	return nil
}

func handleReset(ctx context.Context) error {
	lock, err := instance.Acquire(paths.GetLockFilePath())
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lock)

	session := window.NewSession(ctx, paths.GetCacheDir())
	g := session.Restart(ctx)
	logger.Notice(ctx, "Reset %s, window will open at %dx%d", version.ApplicationName, g.Width, g.Height)
	return nil
}

func handleReleaseNotes() {
	notes := releasenotes.Current()
	if notes == "" {
		logger.Display("No release notes for version %s", version.Version)
		return
	}
	logger.Display(strings.TrimRight(notes, "\n"))
}

func handleCategories() {
	for _, c := range desktopfile.AllCategories() {
		logger.Display("%-20s %-18s %s", c.Label(), c.String(), c.IconName())
	}
}

func handleOpenCache(ctx context.Context) error {
	dir := paths.GetCacheDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache dir %s: %w", dir, err)
	}
	const opener = "xdg-open"
	if !exec.CommandAvailable(ctx, opener) {
		return fmt.Errorf("%s is not available on the host", opener)
	}
	return exec.RunBackground(ctx, fmt.Sprintf("%s %q", opener, dir))
}

func releaseLock(ctx context.Context, lock *instance.Lock) {
	if err := lock.Release(); err != nil {
		logger.Warn(ctx, "Failed to release %s: %v", lock.Path(), err)
	}
}
