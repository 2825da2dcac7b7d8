// Package releasenotes extracts the release notes markup shown in the about
// dialog from the AppStream metainfo.
package releasenotes

import (
	"WebAppHub/internal/assets"
	"WebAppHub/internal/version"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MaxPreviousReleases is the number of older releases included after the current one.
const MaxPreviousReleases = 4

const (
	versionStart = `version="`
	versionEnd   = `" date=`
)

var contentPrefixes = []string{"<p>", "<ul>", "<ol>", "<li>", "</p>", "</ul>", "</ol>", "</li>"}

// Parse scans metainfo line by line and returns the description markup of its
// releases. Releases other than appVersion are introduced by a
// "Previous version" paragraph. Releases whose version (or an appVersion) is
// not a semantic version are skipped.
func Parse(metainfo, appVersion string) string {
	var out strings.Builder

	current, err := semver.NewVersion(appVersion)
	if err != nil {
		return ""
	}

	inRelease := false
	previous := 0

	for _, line := range strings.Split(metainfo, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "<release"):
			if previous >= MaxPreviousReleases {
				return out.String()
			}
			v, ok := releaseVersion(line)
			if !ok {
				continue
			}
			if !v.Equal(current) {
				fmt.Fprintf(&out, "<p><em>Previous version %s</em></p>", v)
				previous++
			}
			inRelease = true
			continue
		case strings.HasPrefix(line, "</release>"):
			inRelease = false
			continue
		}

		if inRelease && hasContentPrefix(line) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}

	return out.String()
}

// Current returns the release notes of the embedded metainfo for the running version.
func Current() string {
	return Parse(assets.GetMetaInfo(), version.Version)
}

func releaseVersion(line string) (*semver.Version, bool) {
	start := strings.Index(line, versionStart)
	end := strings.Index(line, versionEnd)
	if start < 0 || end < 0 {
		return nil, false
	}
	start += len(versionStart)
	if end < start {
		return nil, false
	}
	v, err := semver.NewVersion(line[start:end])
	if err != nil {
		return nil, false
	}
	return v, true
}

func hasContentPrefix(line string) bool {
	for _, p := range contentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
