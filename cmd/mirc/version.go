package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mirc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mirc build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return err
	},
}
