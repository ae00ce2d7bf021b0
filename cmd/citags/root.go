package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trace-toolkit/citags/pkg/config"
	"github.com/trace-toolkit/citags/pkg/version"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "citags",
	Short: "CI build-provenance tag collector",
	Long: `citags normalizes CI provider environments, git metadata and user
overrides into a flat tag set suitable for attaching to test traces.

Run it inside a CI job (or any git checkout) and feed the output to your
trace tagging pipeline.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return err
		}
		if verbose || cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	log.SetOutput(os.Stderr)
	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .citags.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
