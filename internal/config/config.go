// Package config loads the optional minihtml.yaml project file that
// configures the minihtml command.
//
// The file is searched from the working directory upward, so a single file at
// the module root covers every package below it:
//
//	extension: .mh
//	output_suffix: _mh.go
//	jobs: 4
//	skip_imports: false
//	exclude:
//	  - testdata/**
//	  - "**/*_draft.mh"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file.
	FileName = "minihtml.yaml"

	// DefaultExtension is the extension of template files.
	DefaultExtension = ".mh"

	// DefaultOutputSuffix replaces the template extension in generated file
	// names.
	DefaultOutputSuffix = "_mh.go"
)

// Config is the contents of minihtml.yaml.
type Config struct {
	// Extension of template files, with the leading dot.
	Extension string `yaml:"extension,omitempty"`

	// OutputSuffix is appended to the template's base name to form the
	// generated file name.
	OutputSuffix string `yaml:"output_suffix,omitempty"`

	// Exclude holds doublestar globs, relative to the directory holding the
	// config file, of templates to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	// Jobs bounds the number of files processed at once. Zero means one per
	// CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// SkipImports formats generated code with go/format instead of resolving
	// imports.
	SkipImports bool `yaml:"skip_imports,omitempty"`

	// path is where the config was loaded from, empty for defaults.
	path string
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.path = path
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Find walks up from dir and returns the path of the nearest config file,
// or "" if there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Discover loads the nearest config file above dir, falling back to
// Default.
func Discover(dir string) (*Config, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultOutputSuffix
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.GOMAXPROCS(0)
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if !strings.HasSuffix(c.OutputSuffix, ".go") {
		return fmt.Errorf("output_suffix %q must end in .go", c.OutputSuffix)
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory exclude patterns are relative to: the config
// file's directory, or the working directory for defaults.
func (c *Config) Dir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// Excluded reports whether the template at path matches an exclude pattern.
func (c *Config) Excluded(path string) bool {
	if len(c.Exclude) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	base, err := filepath.Abs(c.Dir())
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// OutputName returns the generated file name for a template:
//
//	header.mh     -> header_mh.go
//	my-app.mh     -> my_app_mh.go
func (c *Config) OutputName(path string) string {
	dir := filepath.Dir(path)
	name := strings.TrimSuffix(filepath.Base(path), c.Extension)
	name = strings.ReplaceAll(name, "-", "_")
	return filepath.Join(dir, name+c.OutputSuffix)
}
