package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trace-toolkit/citags/pkg/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display detailed version information including build date and git commit.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "citags version: %s\n", info["version"])
		fmt.Fprintf(cmd.OutOrStdout(), "  build date: %s\n", info["buildDate"])
		fmt.Fprintf(cmd.OutOrStdout(), "  git commit: %s\n", info["gitCommit"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
