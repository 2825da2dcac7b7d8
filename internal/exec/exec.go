// Package exec runs commands on the host, escaping the flatpak sandbox with
// flatpak-spawn when needed.
package exec

import (
	"WebAppHub/internal/envutil"
	"WebAppHub/internal/logger"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// NoExitStatus is reported when the process ended without an exit code.
const NoExitStatus = 999999

// ErrEmptyCommand is returned for a command line with no words.
var ErrEmptyCommand = errors.New("incorrect command")

// Response is the outcome of a synchronous command.
type Response struct {
	Success bool
	Status  int
	Stdout  string
	Stderr  string
}

// HostArgs splits command into argv, prefixed with "flatpak-spawn --host"
// when running inside a flatpak.
func HostArgs(command string, inFlatpak bool) ([]string, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	if inFlatpak {
		args = append([]string{"flatpak-spawn", "--host"}, args...)
	}
	return args, nil
}

// RunSync runs command on the host and waits for it. A non-zero exit is
// reported through Response, not as an error.
func RunSync(ctx context.Context, command string) (Response, error) {
	args, err := HostArgs(command, envutil.IsFlatpakContainer())
	if err != nil {
		return Response{}, err
	}

	logger.Debug(ctx, "Running sync command: %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Response{}, fmt.Errorf("failed to run %s: %w", args[0], err)
	}

	status := NoExitStatus
	if cmd.ProcessState != nil {
		if code := cmd.ProcessState.ExitCode(); code >= 0 {
			status = code
		}
	}

	return Response{
		Success: cmd.ProcessState != nil && cmd.ProcessState.Success(),
		Status:  status,
		Stdout:  ParseOutput(stdout.Bytes()),
		Stderr:  ParseOutput(stderr.Bytes()),
	}, nil
}

// RunBackground starts command on the host without waiting for it.
func RunBackground(ctx context.Context, command string) error {
	args, err := HostArgs(command, envutil.IsFlatpakContainer())
	if err != nil {
		return err
	}

	logger.Debug(ctx, "Running background command: %s", strings.Join(args, " "))

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", args[0], err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// CommandAvailable reports whether name resolves with `which` on the host.
func CommandAvailable(ctx context.Context, name string) bool {
	resp, err := RunSync(ctx, "which "+shellQuote(name))
	return err == nil && resp.Success
}

// ParseOutput decodes process output, trimming surrounding whitespace.
func ParseOutput(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "�"))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
