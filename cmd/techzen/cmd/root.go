// Package cmd implements the techzen CLI's subcommands, grounded on
// go-dws's cmd/dwscript/cmd layout (root command plus one file per
// subcommand, persistent --verbose flag on root).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/techzen-lang/techzen/internal/config"
	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

var (
	Version = "0.1.0-dev"

	evalExpr    string
	includePath string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "techzen",
	Short: "TechZen language interpreter",
	Long: `techzen runs TechZen, a small dynamically-typed, tree-walking
interpreted language: numbers, strings, lists, dicts, functions, and
classes, evaluated directly off the parsed AST.`,
	Version: Version,
	// run/lex/parse print interpreter errors themselves, colorized per
	// --no-color, so cobra's own "Error: ..." wrapper would only duplicate
	// that output.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// errSilent signals that the failing command already printed its own
// error output and main should just exit non-zero.
var errSilent = fmt.Errorf("")

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&includePath, "include-path", "", "directory to resolve run()-ed scripts against (overrides TECHZEN_INCLUDE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in error output (overrides TECHZEN_NO_COLOR)")
}

// resolveConfig layers TECHZEN_* environment variables with this
// invocation's CLI flags, flags taking precedence.
func resolveConfig(cmd *cobra.Command) *config.Config {
	cfg := config.FromEnv()
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg.ApplyFlags(includePath, cmd.Flags().Changed("include-path"), noColor, cmd.Flags().Changed("no-color"), verbose, cmd.Flags().Changed("verbose"))
	return cfg
}

// printFormatted writes err to stderr, colorized per cfg.NoColor unless err
// isn't one of this package's error kinds, and returns errSilent so the
// caller's RunE doesn't trigger cobra's own error line too.
func printFormatted(cfg *config.Config, err error) error {
	if ferr, ok := err.(techerrors.Formatter); ok {
		fmt.Fprintln(os.Stderr, ferr.Format(!cfg.NoColor))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return errSilent
}

func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline code")
	}
	filename = args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(data), filename, nil
}
