package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/techzen-lang/techzen/internal/config"
	"github.com/techzen-lang/techzen/internal/lexer"
	"github.com/techzen-lang/techzen/internal/parser"
	"github.com/techzen-lang/techzen/pkg/techzen"
)

var (
	dumpAST bool
	trace   bool
	watch   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a TechZen file or expression",
	Long: `Execute a TechZen program from a file or inline expression.

Examples:
  techzen run script.tz
  techzen run -e "print('Hello, World!')"
  techzen run --dump-ast script.tz
  techzen run --watch script.tz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print the file being run and the program's final result to stderr")
	runCmd.Flags().BoolVar(&watch, "watch", false, "rerun the script whenever its file changes")
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)

	if watch {
		if len(args) != 1 {
			return fmt.Errorf("--watch requires a file path, not -e/--eval")
		}
		return watchAndRun(args[0], cfg)
	}

	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	return runOnce(filename, source, cfg)
}

func runOnce(filename, source string, cfg *config.Config) error {
	if dumpAST {
		toks, err := lexer.New(filename, source).Tokenize()
		if err != nil {
			return printFormatted(cfg, err)
		}
		tree, err := parser.New(toks).Parse()
		if err != nil {
			return printFormatted(cfg, err)
		}
		fmt.Printf("%#v\n", tree)
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", filename)
	}

	rt := techzen.New(techzen.NewStdIO(), techzen.PathLoader{IncludePath: cfg.IncludePath})
	value, err := rt.Run(filename, source)
	if err != nil {
		return printFormatted(cfg, err)
	}

	if trace && value != nil {
		fmt.Fprintf(os.Stderr, "[trace] result: %s\n", value.String())
	}
	return nil
}

func watchAndRun(filename string, cfg *config.Config) error {
	runFromDisk := func() error {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		if err := runOnce(filename, string(data), cfg); err != nil && err.Error() != "" {
			fmt.Fprintln(os.Stderr, err)
		}
		return nil
	}

	if err := runFromDisk(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fmt.Fprintf(os.Stderr, "[watch] %s changed, rerunning\n", filename)
				if err := runFromDisk(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "[watch] error: %v\n", err)
		}
	}
}
