package desktopfile

import (
	"WebAppHub/internal/testutils"
	"testing"
)

func TestCategoryStrings(t *testing.T) {
	tests := []struct {
		category Category
		value    string
		label    string
	}{
		{AudioVideo, "AudioVideo", "Multimedia"},
		{Audio, "AudioVideo;Audio", "Audio"},
		{Video, "AudioVideo;Video", "Video"},
		{Network, "Network", "Network / Internet"},
		{Utility, "Utility", "Utility"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases,
			testutils.TestCase{Name: "value", Input: tt.label, Expected: tt.value, Actual: tt.category.String(), Pass: tt.category.String() == tt.value},
			testutils.TestCase{Name: "label", Input: tt.value, Expected: tt.label, Actual: tt.category.Label(), Pass: tt.category.Label() == tt.label},
		)
	}

	testutils.PrintTestTable(t, cases)
}

func TestAllCategoriesOrder(t *testing.T) {
	all := AllCategories()
	if len(all) != 13 {
		t.Fatalf("Expected 13 categories, got %d", len(all))
	}
	if all[0] != AudioVideo || all[12] != Utility {
		t.Errorf("Unexpected order: first %v, last %v", all[0], all[12])
	}
	for _, c := range all {
		if c.IconName() == "" {
			t.Errorf("Category %s has no icon", c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Network;", "Network"},
		{"AudioVideo;Audio;", "AudioVideo;Audio"},
		{"AudioVideo;Video;", "AudioVideo;Video"},
		{"AudioVideo", "AudioVideo"},
		{"Audio", ""},
		{"GTK;Office;", "Office"},
		{"WebBrowser;", ""},
		{"", ""},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		c, ok := ParseCategory(tt.input)
		actual := ""
		if ok {
			actual = c.String()
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

func TestInvalidCategory(t *testing.T) {
	c := Category(99)
	if c.String() != "" || c.Label() != "" || c.IconName() != "" {
		t.Errorf("Expected empty strings for out-of-range category")
	}
}
