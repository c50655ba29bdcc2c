// Package corpus runs table-driven tests whose table lives in the file
// system: every template under a testdata directory is a case, and its
// expected outputs sit beside it as sibling files.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root of the test data, relative to the file that calls [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a doublestar glob. Cases
	// whose path matches have their output files rewritten instead of
	// compared, and the test fails so a refresh is never mistaken for a pass.
	Refresh string

	// Extension of the files that define a case, without the dot.
	Extension string

	// Outputs a case produces. A missing output file means the output is
	// expected to be empty.
	Outputs []Output

	// Test runs one case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one result of a case, stored in "<case file>.<Extension>".
type Output struct {
	Extension string

	// Compare defaults to a byte comparison reported as a unified diff.
	Compare Compare
}

// Compare returns "" if got matches want, and a description of the
// mismatch otherwise.
type Compare func(got, want string) string

// Run executes every case in the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	cases, err := c.collect(root)
	if err != nil {
		t.Fatalf("corpus: listing %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpus: no .%s files under %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpus: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpus: refreshing outputs matching %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range cases {
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpus: reading %q: %v", path, err)
			}

			results := c.Test(t, name, string(data))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpus: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite := false
			if refresh != "" {
				rewrite, _ = doublestar.Match(refresh, name)
			}
			for i, out := range c.Outputs {
				outPath := path + "." + out.Extension
				if rewrite {
					if err := writeOutput(outPath, results[i]); err != nil {
						t.Errorf("corpus: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpus: reading %q: %v", outPath, err)
					continue
				}
				compare := out.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %s:\n%s", filepath.Base(outPath), msg)
				}
			}
		})
	}
}

// collect returns the case files under root in lexical order.
func (c Corpus) collect(root string) ([]string, error) {
	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	sort.Strings(cases)
	return cases, err
}

// writeOutput stores an output, deleting the file for an empty one.
func writeOutput(path, content string) error {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("deleting %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// Diff compares byte for byte and describes a mismatch as a colored unified
// diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpus: could not determine the test file's directory")
	}
	return filepath.Dir(file)
}
