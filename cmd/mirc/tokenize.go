package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mirc/internal/diagfmt"
	"mirc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Scan a source file into tokens and print them",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	res, err := driver.Tokenize(args[0])
	if err != nil {
		return err
	}

	if !res.Bag.Empty() {
		useColor, err := resolveColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, res.Bag, res.File, diagfmt.Options{Color: useColor})
		return errExitWithDiagnostics
	}

	for _, tok := range res.Tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-12s %q\n", tok.Pos(), tok.Kind, tok.Lexeme)
	}
	return nil
}
