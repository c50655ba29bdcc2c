// Package term answers whether output goes to an interactive terminal, which
// decides if diagnostics are colored.
package term

import "os"

// NoColorEnv disables colored output when set to any non-empty value.
const NoColorEnv = "NO_COLOR"

// Color reports whether output written to f should carry ANSI colors.
func Color(f *os.File) bool {
	if os.Getenv(NoColorEnv) != "" {
		return false
	}
	return IsTerminal(int(f.Fd()))
}
