package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "bucketbridge",
	Short: "Mirror S3 bucket changes into a GitLab repository",
	Long: `A bridge that receives S3 object-change notifications and mirrors each
change into a GitLab project through the Repository Files API.

Object creations and copies become file creates (falling back to updates
when the file already exists), object removals become file deletes, and
every commit message records which pipeline action produced it.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "",
		"Path to the configuration file (defaults to standard locations)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}
