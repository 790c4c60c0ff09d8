package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techzen-lang/techzen/internal/lexer"
	"github.com/techzen-lang/techzen/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a TechZen file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	cfg := resolveConfig(cmd)

	toks, err := lexer.New(filename, source).Tokenize()
	if err != nil {
		return printFormatted(cfg, err)
	}

	tree, err := parser.New(toks).Parse()
	if err != nil {
		return printFormatted(cfg, err)
	}

	fmt.Printf("%#v\n", tree)
	return nil
}
