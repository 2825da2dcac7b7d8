package testutils

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
)

// PrintTestTable prints an input/expected/returned table for the cases and
// fails the test if any case has Pass=false. Failing rows are marked with > <.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "  %s\tInput\tExpected Value\tReturned Value\t\n", t.Name())

	var failed []string
	for _, tc := range cases {
		color, leftPtr, rightPtr := green, " ", " "
		if !tc.Pass {
			color = red
			leftPtr = red + ">" + reset
			rightPtr = red + "<" + reset
			failed = append(failed, describe(tc))
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s%s%s\t%s\n",
			leftPtr, tc.Name, tc.Input, tc.Expected, color, tc.Actual, reset, rightPtr)
	}

	w.Flush()
	fmt.Println()

	if len(failed) > 0 {
		t.Errorf("%d of %d cases failed:\n%s", len(failed), len(cases), strings.Join(failed, "\n"))
	}
}

func describe(tc TestCase) string {
	label := tc.Input
	if tc.Name != "" {
		label = tc.Name + " (" + tc.Input + ")"
	}
	return fmt.Sprintf("  %s: expected %q, got %q", label, tc.Expected, tc.Actual)
}
