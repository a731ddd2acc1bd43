package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// resolveColor turns the --color flag (auto|on|off) into a concrete
// decision, consulting isTerminal only in the auto case.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to read color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(out), nil
	default:
		return false, fmt.Errorf("unsupported --color value %q (must be auto, on, or off)", mode)
	}
}
