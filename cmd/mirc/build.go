package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mirc/internal/config"
	"mirc/internal/diag"
	"mirc/internal/diagfmt"
	"mirc/internal/driver"
)

var (
	buildFlags    []string
	buildOptimize bool
)

func init() {
	buildCmd.Flags().StringSliceVar(&buildFlags, "flags", nil, "check flags (no-ou-checks, sanitize)")
	buildCmd.Flags().BoolVar(&buildOptimize, "optimize", false, "enable optimization in the lowering step")
}

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Lex, parse, and check a source file, handing the result to the lowerer",
	Long: "Build runs the full front-end pipeline (lex, parse, check) and, on\n" +
		"success, would hand the checked MIR to the native back end; this\n" +
		"repository implements that boundary only as the internal/lower\n" +
		"interface contract, so build stops at a confirmation that every\n" +
		"function's MIR is checked and ready to lower.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	path, flags, optimize, err := resolveBuildInputs(cmd, args)
	if err != nil {
		return err
	}

	bag := diag.NewBag()
	if !validateCheckFlags(flags, bag) {
		useColor, err := resolveColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, bag, nil, diagfmt.Options{Color: useColor})
		return errExitWithDiagnostics
	}

	res, err := driver.Build(cmd.Context(), path)
	if err != nil {
		return err
	}

	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	fatal := !res.Bag.Empty()
	if fatal {
		diagfmt.Pretty(os.Stderr, res.Bag, res.File, diagfmt.Options{Color: useColor})
	}
	for _, fr := range res.Results {
		if fr.OK {
			continue
		}
		fatal = true
		diagfmt.Pretty(os.Stderr, fr.Bag, res.File, diagfmt.Options{Color: useColor})
	}
	if fatal {
		return errExitWithDiagnostics
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "checked %d function(s); ready to lower (optimize=%t)\n",
		len(res.Results), optimize)
	return nil
}

// resolveBuildInputs applies mirc.toml defaults where the CLI left a value
// unset: the positional file argument falls back to [package].source, and
// --flags/--optimize fall back to [check] when absent from the command
// line. CLI flags always win when given explicitly.
func resolveBuildInputs(cmd *cobra.Command, args []string) (path string, flags []string, optimize bool, err error) {
	flags = buildFlags
	optimize = buildOptimize

	manifest, ok, loadErr := config.LoadFromDir(".")
	if loadErr != nil {
		return "", nil, false, loadErr
	}

	if len(args) == 1 {
		path = args[0]
	} else if ok {
		path = manifest.Source
	}
	if path == "" {
		return "", nil, false, fmt.Errorf("no source file given and no mirc.toml [package].source found")
	}

	if !cmd.Flags().Changed("flags") && ok {
		flags = manifest.Flags
	}
	if !cmd.Flags().Changed("optimize") && ok {
		optimize = manifest.Optimize
	}
	return path, flags, optimize, nil
}
