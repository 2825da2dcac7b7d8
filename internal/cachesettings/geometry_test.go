package cachesettings

import (
	"WebAppHub/internal/testutils"
	"fmt"
	"testing"
)

func TestSanitizeClampLaw(t *testing.T) {
	const (
		def     = 950
		minimum = 600
		huge    = 1 << 30
	)

	tests := []struct {
		stored   int
		expected int
	}{
		{0, def},
		{1, minimum},
		{minimum - 1, minimum},
		{minimum, minimum},
		{minimum + 1, minimum + 1},
		{huge, huge},
		{-20, minimum},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		width := Sanitize(WindowSettings{Width: tt.stored}, Size{def, def}, Size{minimum, minimum}).Width
		height := Sanitize(WindowSettings{Height: tt.stored}, Size{def, def}, Size{minimum, minimum}).Height
		cases = append(cases,
			testutils.TestCase{
				Name:     "width",
				Input:    fmt.Sprintf("%d", tt.stored),
				Expected: fmt.Sprintf("%d", tt.expected),
				Actual:   fmt.Sprintf("%d", width),
				Pass:     width == tt.expected,
			},
			testutils.TestCase{
				Name:     "height",
				Input:    fmt.Sprintf("%d", tt.stored),
				Expected: fmt.Sprintf("%d", tt.expected),
				Actual:   fmt.Sprintf("%d", height),
				Pass:     height == tt.expected,
			},
		)
	}

	testutils.PrintTestTable(t, cases)
}

func TestSanitizeDimensionsAreIndependent(t *testing.T) {
	g := Sanitize(WindowSettings{Width: 0, Height: 1}, Size{950, 850}, Size{600, 500})

	if g.Width != 950 || g.Height != 500 {
		t.Errorf("Expected (950, 500), got (%d, %d)", g.Width, g.Height)
	}
}

func TestSanitizeMaximizedPassesThrough(t *testing.T) {
	var cases []testutils.TestCase
	for _, stored := range []WindowSettings{
		{Maximized: true},
		{Width: 10, Height: 0, Maximized: true},
		{Width: 2000, Height: 2000, Maximized: true},
		{Width: 2000, Height: 2000, Maximized: false},
		{},
	} {
		g := Sanitize(stored, Size{950, 850}, Size{600, 500})
		cases = append(cases, testutils.TestCase{
			Input:    fmt.Sprintf("%+v", stored),
			Expected: fmt.Sprintf("%t", stored.Maximized),
			Actual:   fmt.Sprintf("%t", g.Maximized),
			Pass:     g.Maximized == stored.Maximized,
		})
	}

	testutils.PrintTestTable(t, cases)
}
