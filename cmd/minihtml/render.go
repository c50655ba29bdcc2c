package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-minihtml/pkg/compiler"
)

func renderCmd() *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a node template to stdout",
		Long: `Render compiles FILE, a bare node list such as

  ul { li { +first }; li { +second } }

and prints the HTML. Variables are strings; "true" and "false" become
booleans.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseVars(vars)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tmpl, err := compiler.Compile(args[0], string(data))
			if err != nil {
				var ce *compiler.CompileError
				if errors.As(err, &ce) {
					fmt.Fprint(cmd.ErrOrStderr(), ce.Pretty(useColor(cmd.ErrOrStderr())))
					return fmt.Errorf("%s: %d compile error(s)", args[0], len(ce.Diagnostics))
				}
				return err
			}

			out, err := compiler.RenderToString(tmpl, scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "template variable as name=value (repeatable)")
	return cmd
}

// parseVars turns name=value flags into template variables.
func parseVars(flags []string) (compiler.Vars, error) {
	vars := compiler.Vars{}
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=value", f)
		}
		switch value {
		case "true":
			vars[name] = true
		case "false":
			vars[name] = false
		default:
			vars[name] = value
		}
	}
	return vars, nil
}
