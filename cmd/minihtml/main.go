// Command minihtml compiles minihtml templates.
//
// Usage:
//
//	minihtml generate [path...]    Generate Go code from .mh files
//	minihtml check [path...]       Check .mh files without generating
//	minihtml render FILE           Render a node template to stdout
//	minihtml version               Print version information
//
// Paths are files, directories, or directories followed by /... to recurse:
//
//	minihtml generate ./...
//	minihtml generate ./views
//	minihtml check header.mh
//	minihtml render --var title=Hello page.mh
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-minihtml/internal/config"
	"github.com/grindlemire/go-minihtml/internal/debug"
	"github.com/grindlemire/go-minihtml/internal/term"
)

var version = "0.1.0"

// globalOptions are the flags shared by every command.
type globalOptions struct {
	verbose  bool
	debugLog string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "minihtml",
		Short: "Compiler for minihtml templates",
		Long: `minihtml compiles templates such as

  div.card#main(title = t) { h1 { +heading } }

into Go functions that write escaped HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debugLog != "" {
				if err := debug.Init(opts.debugLog); err != nil {
					return err
				}
			}
			debug.Log("minihtml %s: %s %v", version, cmd.Name(), args)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&opts.debugLog, "debug-log", "",
		"append debug logs to this file (also $"+debug.EnvVar+")")

	root.AddCommand(
		generateCmd(opts),
		checkCmd(opts),
		renderCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minihtml version %s\n", version)
		},
	}
}

// loadConfig finds minihtml.yaml above the working directory and applies
// the flags that were set explicitly.
func loadConfig(cmd *cobra.Command, jobs int, skipImports bool) (*config.Config, error) {
	cfg, err := config.Discover(".")
	if err != nil {
		return nil, err
	}
	if cfg.Path() != "" {
		debug.Log("config: loaded %s", cfg.Path())
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
		if jobs == 0 {
			cfg.Jobs = runtime.GOMAXPROCS(0)
		}
	}
	if cmd.Flags().Changed("skip-imports") {
		cfg.SkipImports = skipImports
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// useColor reports whether diagnostics written to w may be colored.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.Color(f)
}
