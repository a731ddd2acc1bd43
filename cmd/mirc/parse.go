package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mirc/internal/diagfmt"
	"mirc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its top-level function signatures",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	res, err := driver.Parse(args[0])
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

	out := cmd.OutOrStdout()
	for _, fn := range res.Fns {
		ret := fn.Fn.ReturnType
		if ret == "" {
			ret = "void"
		}
		fmt.Fprintf(out, "fn %s(%d params) -> %s [%d statements]\n",
			fn.Fn.Name, len(fn.Fn.Params), ret, len(fn.Fn.Body))
	}
	return nil
}
