package cmd

import (
	"strconv"
	"strings"
)

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "maximized":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

// intArgs converts already validated integer arguments.
func intArgs(args []string) []int {
	out := make([]int, len(args))
	for i, a := range args {
		out[i], _ = parseInt(a)
	}
	return out
}
