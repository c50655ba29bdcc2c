package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grindlemire/go-minihtml/internal/config"
)

// collectTemplates finds the template files named by paths.
// Supports:
//   - Direct file paths: "header.mh"
//   - Directory paths: "./views" (not recursive)
//   - Recursive pattern: "./..."
//
// Files matching the config's exclude patterns are skipped. The result is
// sorted and free of duplicates.
func collectTemplates(paths []string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] || cfg.Excluded(p) {
			return
		}
		seen[p] = true
		files = append(files, p)
	}
	isTemplate := func(name string) bool {
		return strings.HasSuffix(name, cfg.Extension)
	}

	for _, path := range paths {
		if root, ok := strings.CutSuffix(path, "..."); ok {
			root = strings.TrimSuffix(root, "/")
			if root == "" {
				root = "."
			}
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() && p != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				if !d.IsDir() && isTemplate(p) {
					add(p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isTemplate(entry.Name()) {
					add(filepath.Join(path, entry.Name()))
				}
			}
		} else if isTemplate(path) {
			add(path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// skipDir reports directories the go tool ignores as well.
func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
