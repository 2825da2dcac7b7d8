package locale

import (
	"WebAppHub/internal/constants"
	"WebAppHub/internal/testutils"
	"context"
	"testing"
)

func TestResolve(t *testing.T) {
	supported := []string{"en", "nl", "pt_BR"}

	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"en_GB", "en"},
		{"nl_BE", "nl"},
		{"pt_BR", "pt_BR"},
		{"pt_PT", "pt"},
		{"de_DE", ""},
		{"", ""},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := Resolve(tt.input, supported)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestInitFallsBackToDefault(t *testing.T) {
	t.Setenv(constants.LanguageEnv, "de_DE.UTF-8")
	if got := Init(context.Background()); got != constants.DefaultLocale {
		t.Errorf("Expected %s, got %s", constants.DefaultLocale, got)
	}

	t.Setenv(constants.LanguageEnv, "nl_NL.UTF-8")
	if got := Init(context.Background()); got != "nl" {
		t.Errorf("Expected nl, got %s", got)
	}
}
