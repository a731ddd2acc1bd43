package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mirc/internal/diag"
	"mirc/internal/diagfmt"
	"mirc/internal/driver"
	"mirc/internal/mirfmt"
)

var (
	checkFlags   []string
	checkMIRDump string
	checkMIRFmt  string
)

func init() {
	checkCmd.Flags().StringSliceVar(&checkFlags, "flags", nil, "check flags (no-ou-checks, sanitize)")
	checkCmd.Flags().StringVar(&checkMIRDump, "mir-dump", "", "write the MIR dump to this path instead of stdout")
	checkCmd.Flags().StringVar(&checkMIRFmt, "mir-format", "text", "MIR dump format (text|msgpack)")
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the MIR builder and borrow checker over a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag()
	if !validateCheckFlags(checkFlags, bag) {
		useColor, err := resolveColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, bag, nil, diagfmt.Options{Color: useColor})
		return errExitWithDiagnostics
	}

	res, err := driver.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	fatal := false
	for _, fr := range res.Results {
		if fr.OK {
			continue
		}
		fatal = true
		diagfmt.Pretty(os.Stderr, fr.Bag, res.File, diagfmt.Options{Color: useColor})
	}
	if !res.Bag.Empty() {
		fatal = true
		diagfmt.Pretty(os.Stderr, res.Bag, res.File, diagfmt.Options{Color: useColor})
	}
	if fatal {
		return errExitWithDiagnostics
	}

	return dumpMIR(cmd, res)
}

func dumpMIR(cmd *cobra.Command, res *driver.BuildResult) error {
	out := cmd.OutOrStdout()
	if checkMIRDump != "" {
		f, err := os.Create(checkMIRDump)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", checkMIRDump, err)
		}
		defer f.Close()
		out = f
	}

	switch checkMIRFmt {
	case "text":
		for _, fr := range res.Results {
			mirfmt.Text(out, fr.Func)
		}
		return nil
	case "msgpack":
		for _, fr := range res.Results {
			data, err := mirfmt.Binary(fr.Func)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported --mir-format value %q (must be text or msgpack)", checkMIRFmt)
	}
}
