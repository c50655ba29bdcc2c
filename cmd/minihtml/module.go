package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

// module is the Go module that generated files belong to.
type module struct {
	Dir  string
	File *modfile.File
}

// findModule returns the module containing dir, or nil if dir is not inside
// a module.
func findModule(dir string) (*module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, "go.mod")
		data, err := os.ReadFile(path)
		if err == nil {
			f, err := modfile.ParseLax(path, data, nil)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			return &module{Dir: dir, File: f}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Path returns the module path.
func (m *module) Path() string {
	if m.File.Module == nil {
		return ""
	}
	return m.File.Module.Mod.Path
}

// RequiresRuntime reports whether generated code will resolve its import of
// the rendering library.
func (m *module) RequiresRuntime() bool {
	if m.Path() == mhgen.RuntimeImport {
		return true
	}
	for _, r := range m.File.Require {
		if r.Mod.Path == mhgen.RuntimeImport {
			return true
		}
	}
	return false
}

// SourceName is the name recorded in a generated file's header: the
// template path relative to the module root, or its base name outside a
// module.
func (m *module) SourceName(path string) string {
	if m == nil {
		return filepath.Base(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(m.Dir, abs)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
