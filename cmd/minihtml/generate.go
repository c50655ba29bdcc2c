package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-minihtml/internal/config"
	"github.com/grindlemire/go-minihtml/internal/debug"
	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

func generateCmd(global *globalOptions) *cobra.Command {
	var (
		jobs        int
		skipImports bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path...]",
		Short: "Generate Go code from template files",
		Long: `Generate writes <name>_mh.go beside every template. Each templ
declaration becomes a Go function returning a minihtml.Func.

Paths default to the current directory; "dir/..." recurses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, jobs, skipImports)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, cfg, global.verbose)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files to process in parallel (default: one per CPU)")
	cmd.Flags().BoolVar(&skipImports, "skip-imports", false, "format with go/format instead of resolving imports")
	return cmd
}

// runGenerate processes template files and writes the corresponding Go
// source files.
func runGenerate(stdout, stderr io.Writer, paths []string, cfg *config.Config, verbose bool) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectTemplates(paths, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", cfg.Extension)
	}
	if verbose {
		fmt.Fprintf(stdout, "Found %d %s file(s)\n", len(files), cfg.Extension)
	}

	mod, err := findModule(filepath.Dir(files[0]))
	if err != nil {
		return err
	}
	if mod != nil && !mod.RequiresRuntime() {
		fmt.Fprintf(stderr, "warning: %s does not require %s; generated code will not build\n",
			filepath.Join(mod.Dir, "go.mod"), mhgen.RuntimeImport)
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex // serializes output
		failures atomic.Int32
		color    = useColor(stderr)
	)
	g.SetLimit(cfg.Jobs)

	for _, inputPath := range files {
		g.Go(func() error {
			outputPath := cfg.OutputName(inputPath)
			src, err := generateFile(inputPath, outputPath, mod.SourceName(inputPath), cfg.SkipImports)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures.Add(1)
				reportError(stderr, inputPath, src, err, color)
				return nil
			}
			if verbose {
				fmt.Fprintf(stdout, "Generated %s -> %s\n", inputPath, outputPath)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	if verbose {
		fmt.Fprintf(stdout, "Successfully generated %d file(s)\n", len(files))
	}
	return nil
}

// generateFile parses a template file and writes the generated Go file. The
// template source is returned so errors can be shown in context.
func generateFile(inputPath, outputPath, sourceName string, skipImports bool) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	src := string(data)

	file, err := mhgen.Parse(inputPath, src)
	if err != nil {
		return src, err
	}
	if err := mhgen.AnalyzeFile(file); err != nil {
		return src, err
	}

	gen := mhgen.NewGenerator()
	gen.SkipImports = skipImports
	out, err := gen.Generate(file, sourceName)
	if err != nil {
		return src, fmt.Errorf("generating code: %w", err)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return src, fmt.Errorf("writing file: %w", err)
	}
	debug.Log("generate: wrote %s (%d bytes)", outputPath, len(out))
	return src, nil
}

// reportError prints a compile error with source excerpts, or a plain
// error prefixed with the file it concerns.
func reportError(w io.Writer, path, src string, err error, color bool) {
	if _, ok := mhgen.AsErrorList(err); ok {
		fmt.Fprint(w, mhgen.FormatError(err, src, color))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", path, err)
}
