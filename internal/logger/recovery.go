package logger

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"time"

	"WebAppHub/internal/version"
)

// FatalError is a special error used to panic from Fatal logger calls.
// This allows the main run loop to recover and perform cleanup before exiting.
type FatalError struct{}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("%s [%s] (%s, built %s)", version.ApplicationName, version.Version, version.Commit, version.BuildDate))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, fmt.Sprintf("ARCH: %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:   %s", runtime.GOOS))

	if u, err := user.Current(); err == nil {
		info = append(info, fmt.Sprintf("USER: %s (%s)", u.Username, u.HomeDir))
	}

	return info
}

// Fatal logs msg with system information and a stack trace at FatalLevel, then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var traceLines []string
	for {
		frame, more := frames.Next()
		traceLines = append(traceLines, fmt.Sprintf("  %s:%d (%s)", frame.File, frame.Line, filepath.Base(frame.Function)))
		if !more {
			break
		}
	}

	var infoLines []string
	for _, line := range getSystemInfo() {
		infoLines = append(infoLines, "  "+line)
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 {
		msgStr = fmt.Sprintf(msgStr, args...)
	}

	output := []any{
		"### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msgStr,
	}
	logAt(ctx, now, LevelFatal, output)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and panics with FatalError.
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// Recover traps panics that are not FatalError and reports them as fatal.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(FatalError); ok {
		panic(r)
	}
	Fatal(ctx, "panic: %v", r)
}
