package term

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColor_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if Color(f) {
		t.Error("Color() = true for a regular file")
	}
}

func TestColor_NoColor(t *testing.T) {
	t.Setenv(NoColorEnv, "1")
	if Color(os.Stderr) {
		t.Errorf("Color() = true with %s set", NoColorEnv)
	}
}
