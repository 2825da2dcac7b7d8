package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"WebAppHub/cmd"
	"WebAppHub/internal/envutil"
	"WebAppHub/internal/locale"
	"WebAppHub/internal/logger"
	"WebAppHub/internal/paths"
	"WebAppHub/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	initLogging()
	slog.SetDefault(logger.NewLogger(paths.GetLogFilePath()))
	ctx := context.Background()

	defer cleanup(ctx)

	// Recover from logger.FatalError to ensure cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintf(os.Stderr, "%s did not finish running successfully.\n", version.ApplicationName)
		}
	}()
	defer logger.Recover(ctx)

	logger.Debug(ctx, "Environment: %s", envutil.Describe())
	logger.Debug(ctx, "Cache directory: %s", paths.GetCacheDir())
	locale.Init(ctx)

	groups, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	return cmd.Execute(ctx, groups)
}

// initLogging applies WAH_LOG before the logger is built. Debug stays on for
// devcontainer runs.
func initLogging() {
	level := logger.LevelNotice
	if envutil.IsDevcontainer() {
		level = logger.LevelDebug
	}
	if name, ok := envutil.LogLevel(); ok {
		parsed, err := logger.ParseLevel(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid WAH_LOG environment variable set, using default: %v\n", err)
		} else {
			level = parsed
		}
	}
	logger.SetBaseLevel(level)
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Cleaning up...")
	logger.Cleanup()
}
