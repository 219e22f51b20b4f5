package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/stratcheck/internal/buildconfig"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := buildconfig.VersionInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "stratcheck %s (commit %s, %s)\n",
			info["version"], info["commit"], info["go_version"])
	},
}
