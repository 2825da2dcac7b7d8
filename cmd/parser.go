package cmd

import (
	"WebAppHub/internal/version"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseError points at the argument that could not be parsed.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message, %o is the failing option
	FailingCommand string   // The command being processed (e.g. "--geometry")
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{version.CommandName}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		cmdLineParts = append(cmdLineParts, e.Args[i])
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "^"

	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", "'"+e.FailingCommand+"'",
		"%o", "'"+failingOpt+"'",
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '%s --help' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// CommandSlice returns the command and its arguments as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// Flatten converts a slice of CommandGroups into a single slice of strings
func Flatten(groups []CommandGroup) []string {
	var s []string
	for _, g := range groups {
		s = append(s, g.FullSlice()...)
	}
	return s
}

var modifiers = map[string]bool{
	"-v": true, "--verbose": true,
	"-x": true, "--debug": true,
}

// Parse splits the command line into command groups. Modifiers apply to the
// command that follows them; each command consumes its own arguments.
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	// Expand combined short flags (e.g. -vs -> -v -s)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		cmdName := strings.TrimLeft(arg, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++
		argStart := i

		// optionalArgs consumes up to max non-flag arguments.
		optionalArgs := func(max int) {
			for count := 0; count < max && i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-"); count++ {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		}

		switch cmd {
		case "-g", "--geometry":
			optionalArgs(4)
			if n := len(currentGroup.Args); n != 0 && n != 4 {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: fmt.Sprintf("Command %s takes either no arguments or four.", cmd)}
			}
			if err := requireIntegers(expandedArgs, argStart, currentGroup.Args, cmd); err != nil {
				return nil, err
			}

		case "-w", "--window-close":
			optionalArgs(3)
			if len(currentGroup.Args) < 2 {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: fmt.Sprintf("Command %s requires a width and a height.", cmd)}
			}
			if err := requireIntegers(expandedArgs, argStart, currentGroup.Args[:2], cmd); err != nil {
				return nil, err
			}
			if len(currentGroup.Args) == 3 {
				if _, ok := parseBool(currentGroup.Args[2]); !ok {
					return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Invalid option %o"}
				}
			}

		case "-h", "--help":
			// Help allows an optional command to describe
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		case "-V", "--version",
			"-s", "--settings-show",
			"-R", "--reset",
			"-r", "--release-notes",
			"-c", "--categories",
			"-o", "--open-cache":
			// No arguments
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}

// requireIntegers reports the first of values that is not an integer.
// start is the index of values[0] in expandedArgs.
func requireIntegers(expandedArgs []string, start int, values []string, cmd string) error {
	for j, v := range values {
		if _, err := parseInt(v); err != nil {
			return &ParseError{Args: expandedArgs, Index: start + j, FailingCommand: cmd, Message: "Invalid option %o, expected a number."}
		}
	}
	return nil
}
