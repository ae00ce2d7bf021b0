package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trace-toolkit/citags/pkg/ci"
	"github.com/trace-toolkit/citags/pkg/output"
)

var (
	collectDir    string
	collectFormat string
	collectRunID  bool
)

// collectCmd runs the full extraction against the process environment.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect CI, git and host tags",
	Long: `Collect build-provenance tags from the detected CI provider, the local
git repository and the CITAGS_GIT_* override variables, then print the
merged tag set.

Local runs without a CI environment are valid and produce the git and
host tags only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := collectDir
		if dir == "" {
			dir = cfg.Dir
		}
		format := collectFormat
		if format == "" {
			format = cfg.Format
		}

		tags := ci.Tags(nil, dir)
		for k, v := range cfg.Extra {
			if v != "" {
				tags[k] = v
			}
		}
		if collectRunID {
			tags["run.id"] = uuid.NewString()
		}
		return output.Render(cmd.OutOrStdout(), output.Format(format), tags)
	},
}

func init() {
	collectCmd.Flags().StringVar(&collectDir, "dir", "", "repository directory (default current directory)")
	collectCmd.Flags().StringVarP(&collectFormat, "format", "f", "", "output format: text, json or yaml")
	collectCmd.Flags().BoolVar(&collectRunID, "run-id", false, "attach a generated run.id tag for correlating invocations")
	rootCmd.AddCommand(collectCmd)
}
