package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog(t *testing.T) {
	type tc struct {
		format string
		args   []any
		want   string
	}

	tests := map[string]tc{
		"plain message": {
			format: "generated %d templates",
			args:   []any{3},
			want:   "generated 3 templates",
		},
		"no args": {
			format: "start",
			want:   "start",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer Close()

			Logf(tt.format, tt.args...)
			got := buf.String()
			if !strings.HasPrefix(got, "[") {
				t.Errorf("missing timestamp: %q", got)
			}
			if !strings.HasSuffix(got, tt.want+"\n") {
				t.Errorf("Log() = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

func TestLogDisabled(t *testing.T) {
	t.Setenv(EnvVar, "")
	Close()
	if Enabled() {
		t.Fatal("Enabled() = true with no output configured")
	}
	Log("dropped")
}

func TestInitFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	t.Setenv(EnvVar, path)
	Close()
	defer Close()

	Log("hello %s", "file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q", data)
	}
}
