// Package desktopfile holds the desktop-entry vocabulary used for web apps.
package desktopfile

import "strings"

// Category is a freedesktop main category.
// See https://specifications.freedesktop.org/menu/latest/category-registry.html
type Category int

const (
	AudioVideo Category = iota
	Audio
	Video
	Development
	Education
	Game
	Graphics
	Network
	Office
	Science
	Settings
	System
	Utility
)

type categoryInfo struct {
	value string
	label string
	icon  string
}

var categories = [...]categoryInfo{
	AudioVideo:  {"AudioVideo", "Multimedia", "applications-multimedia-symbolic"},
	Audio:       {"AudioVideo;Audio", "Audio", "audio-x-generic-symbolic"},
	Video:       {"AudioVideo;Video", "Video", "video-x-generic-symbolic"},
	Development: {"Development", "Development", "applications-engineering-symbolic"},
	Education:   {"Education", "Education", "emoji-symbols-symbolic"},
	Game:        {"Game", "Game", "applications-games-symbolic"},
	Graphics:    {"Graphics", "Graphics", "applications-graphics-symbolic"},
	Network:     {"Network", "Network / Internet", "web-browser-symbolic"},
	Office:      {"Office", "Office", "x-office-document-symbolic"},
	Science:     {"Science", "Science", "applications-science-symbolic"},
	Settings:    {"Settings", "Settings", "preferences-other-symbolic"},
	System:      {"System", "System", "preferences-system-symbolic"},
	Utility:     {"Utility", "Utility", "applications-utilities-symbolic"},
}

// AllCategories returns every category in the order the category picker shows them.
func AllCategories() []Category {
	all := make([]Category, len(categories))
	for i := range categories {
		all[i] = Category(i)
	}
	return all
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(categories)
}

// String returns the value written to the Categories= key of a desktop entry.
func (c Category) String() string {
	if !c.valid() {
		return ""
	}
	return categories[c].value
}

// Label returns the human-readable name.
func (c Category) Label() string {
	if !c.valid() {
		return ""
	}
	return categories[c].label
}

// IconName returns the symbolic icon shown next to the category.
func (c Category) IconName() string {
	if !c.valid() {
		return ""
	}
	return categories[c].icon
}

// ParseCategory maps a Categories= value back to a Category. The category
// whose own value is fully contained in the list and has the most parts wins,
// so "AudioVideo;Audio;" is Audio rather than AudioVideo.
func ParseCategory(value string) (Category, bool) {
	present := make(map[string]bool)
	for _, part := range strings.Split(value, ";") {
		if part = strings.TrimSpace(part); part != "" {
			present[part] = true
		}
	}

	best, bestParts := Category(-1), 0
	for _, c := range AllCategories() {
		parts := strings.Split(c.String(), ";")
		matched := true
		for _, p := range parts {
			if !present[p] {
				matched = false
				break
			}
		}
		if matched && len(parts) > bestParts {
			best, bestParts = c, len(parts)
		}
	}
	return best, bestParts > 0
}
