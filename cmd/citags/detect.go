package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trace-toolkit/citags/pkg/ci"
)

var detectQuiet bool

var errNoProvider = errors.New("no CI provider detected")

// detectCmd prints the CI provider matched from the environment, or "local"
// when none matches.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected CI provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ci.Provider(ci.Environ())
		if name == "" {
			if detectQuiet {
				return errNoProvider
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "local")
			return err
		}
		if detectQuiet {
			return nil
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), name)
		return err
	},
}

func init() {
	detectCmd.Flags().BoolVarP(&detectQuiet, "quiet", "q", false, "no output, exit non-zero when not in CI")
	rootCmd.AddCommand(detectCmd)
}
