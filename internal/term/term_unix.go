//go:build unix

package term

import "golang.org/x/sys/unix"

// IsTerminal reports whether fd refers to a terminal. Only terminals answer
// the window size request.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	return err == nil
}
