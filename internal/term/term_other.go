//go:build !unix

package term

// IsTerminal always reports false outside unix; diagnostics stay plain.
func IsTerminal(fd int) bool {
	return false
}
