package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techzen-lang/techzen/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a TechZen file or expression",
	Long: `Tokenize a TechZen program and print the resulting token stream.

Examples:
  techzen lex script.tz
  techzen lex -e "VAR x = 5"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.New(filename, source).Tokenize()
	if err != nil {
		return printFormatted(resolveConfig(cmd), err)
	}

	for _, tok := range toks {
		fmt.Printf("%s @%d:%d\n", tok.String(), tok.PosStart.Line+1, tok.PosStart.Column)
	}
	return nil
}
