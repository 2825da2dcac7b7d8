package exec

import (
	"WebAppHub/internal/testutils"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestHostArgs(t *testing.T) {
	tests := []struct {
		input     string
		inFlatpak bool
		expected  string
	}{
		{"which firefox", false, "which|firefox"},
		{"which firefox", true, "flatpak-spawn|--host|which|firefox"},
		{`xdg-open "/home/user/My Cache"`, false, "xdg-open|/home/user/My Cache"},
		{"  ls   -la  ", false, "ls|-la"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		args, err := HostArgs(tt.input, tt.inFlatpak)
		actual := strings.Join(args, "|")
		if err != nil {
			actual = err.Error()
		}
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestHostArgsEmpty(t *testing.T) {
	if _, err := HostArgs("   ", false); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Expected ErrEmptyCommand, got %v", err)
	}
}

func TestRunSync(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	t.Setenv("container", "")
	ctx := context.Background()

	resp, err := RunSync(ctx, `sh -c "echo ' hello '; echo oops >&2; exit 3"`)
	if err != nil {
		t.Fatalf("RunSync failed: %v", err)
	}
	if resp.Success || resp.Status != 3 {
		t.Errorf("Expected failed status 3, got success=%v status=%d", resp.Success, resp.Status)
	}
	if resp.Stdout != "hello" || resp.Stderr != "oops" {
		t.Errorf("Unexpected output stdout=%q stderr=%q", resp.Stdout, resp.Stderr)
	}
}

func TestRunSyncMissingBinary(t *testing.T) {
	t.Setenv("container", "")
	if _, err := RunSync(context.Background(), "webapphub-command-that-does-not-exist"); err == nil {
		t.Errorf("Expected an error for a missing binary")
	}
}

func TestCommandAvailable(t *testing.T) {
	if _, err := exec.LookPath("which"); err != nil {
		t.Skip("which not available")
	}
	t.Setenv("container", "")
	ctx := context.Background()

	if !CommandAvailable(ctx, "sh") {
		t.Errorf("Expected sh to be available")
	}
	if CommandAvailable(ctx, "webapphub-command-that-does-not-exist") {
		t.Errorf("Expected missing command to be unavailable")
	}
}
