// Package main implements the mirc CLI: lex, parse, check, and dump the MIR
// of a single source file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mirc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "mirc",
	Short:         "mirc is the MIR builder and borrow checker toolchain",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.String()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		if err != errExitWithDiagnostics {
			fmt.Fprintln(os.Stderr, "mirc:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal, for --color=auto.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
