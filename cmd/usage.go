package cmd

import (
	"WebAppHub/internal/constants"
	"WebAppHub/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Print(GetUsage(target))
}

type usageEntry struct {
	names []string
	args  string
	lines []string
}

var usageEntries = []usageEntry{
	{[]string{"-v", "--verbose"}, "", []string{"Verbose output for the following command"}},
	{[]string{"-x", "--debug"}, "", []string{"Debug output for the following command"}},
	{[]string{"-h", "--help"}, " [<command>]", []string{"Show this usage information, or the usage of a single command"}},
	{[]string{"-V", "--version"}, "", []string{"Show the version"}},
	{[]string{"-s", "--settings-show"}, "", []string{"Show the cached settings file and its values"}},
	{[]string{"-g", "--geometry"}, " [<def-width> <def-height> <min-width> <min-height>]", []string{
		"Show the window geometry the window would open with",
		"Unset sizes use the defaults, sizes below the minimum are raised to it",
		fmt.Sprintf("Defaults: %d %d %d %d", constants.DefaultWindowWidth, constants.DefaultWindowHeight, constants.MinWindowWidth, constants.MinWindowHeight),
	}},
	{[]string{"-w", "--window-close"}, " <width> <height> [<maximized>]", []string{
		"Record the window geometry and save it, as closing the window does",
	}},
	{[]string{"-R", "--reset"}, "", []string{
		"Reset the cached settings to defaults and reload the application state",
	}},
	{[]string{"-r", "--release-notes"}, "", []string{"Show the release notes for this version"}},
	{[]string{"-c", "--categories"}, "", []string{"List the desktop categories a web app can use"}},
	{[]string{"-o", "--open-cache"}, "", []string{"Open the cache folder in the host file manager"}},
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	if target == "" {
		printStr(fmt.Sprintf("Usage: %s [<Flags>] [<Command>] ...", version.CommandName))
		printStr("")
		printStr(fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version))
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Set WAH_LOG to trace, debug, info, warn or error to change the default log level.")
		printStr("")
	}

	found := false
	for _, e := range usageEntries {
		if target != "" && !matches(e.names, target) {
			continue
		}
		found = true
		printStr(strings.Join(e.names, " ") + e.args)
		for _, l := range e.lines {
			printStr("    " + l)
		}
	}

	if !found {
		printStr(fmt.Sprintf("Unknown command '%s'", target))
	}

	return sb.String()
}

func matches(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}
