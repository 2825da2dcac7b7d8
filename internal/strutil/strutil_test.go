package strutil

import (
	"WebAppHub/internal/testutils"
	"testing"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"firefox", "Firefox"},
		{"Firefox", "Firefox"},
		{"éclair", "Éclair"},
		{"x", "X"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := Capitalize(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestCapitalizeAllWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"google chrome", "Google Chrome"},
		{"window width", "Window Width"},
		{"a  b", "A  B"},
		{"", ""},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := CapitalizeAllWords(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}
