package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-minihtml/internal/config"
	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

func checkCmd(global *globalOptions) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check template files without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, jobs, false)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, cfg, global.verbose)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files to check in parallel (default: one per CPU)")
	return cmd
}

// checkResult is the outcome for one file, kept in input order.
type checkResult struct {
	src string
	err error
}

// runCheck parses and analyzes template files without generating code.
func runCheck(stdout, stderr io.Writer, paths []string, cfg *config.Config, verbose bool) error {
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
		fmt.Fprintf(stdout, "Checking %d %s file(s)\n", len(files), cfg.Extension)
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, path := range files {
		g.Go(func() error {
			results[i].src, results[i].err = checkFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	color := useColor(stderr)
	var errorCount int
	for i, r := range results {
		if verbose {
			fmt.Fprintf(stdout, "Checked %s\n", files[i])
		}
		if r.err != nil {
			reportError(stderr, files[i], r.src, r.err, color)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile parses and analyzes a single template file.
func checkFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	src := string(data)

	file, err := mhgen.Parse(path, src)
	if err != nil {
		return src, err
	}
	return src, mhgen.AnalyzeFile(file)
}
