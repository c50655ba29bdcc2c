package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "MINIHTML_DEBUG"

var (
	logOut   io.Writer
	logFile  *os.File
	resolved bool
	mu       sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "minihtml-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "minihtml-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logOut = f
	resolved = true
	return nil
}

// SetOutput sends debug messages to w instead of a file. A nil w disables
// logging. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logOut = w
	resolved = true
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logOut = nil
	resolved = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug messages are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return logOut != nil
}

// resolveLocked opens the file named by EnvVar the first time logging is
// used. Caller must hold mu.
func resolveLocked() {
	if resolved {
		return
	}
	resolved = true
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "minihtml: %v\n", err)
		}
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	resolveLocked()
	if logOut == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logOut, "[%s] %s\n", timestamp, msg)
	if logFile != nil {
		logFile.Sync()
	}
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
