package cmd

import (
	"errors"

	"bundlex/pkg/bundle"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var bundleArgs bundle.Arguments

// bundleCmd walks the source directory and writes the bundle file.
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Bundle a directory tree into a single file",
	Long: `Bundle recursively reads every file beneath the source directory and
concatenates their contents into one output file. Each file's content is
prefixed with a header line carrying its path relative to the source root.
Files that cannot be read or decoded as UTF-8 text are skipped and reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := afero.NewOsFs()

		summary, err := bundle.Run(fsys, bundleArgs, logger)
		if err != nil {
			if errors.Is(err, bundle.ErrSourceMissing) {
				color.Red("Error: The directory '%s' does not exist.", bundleArgs.Source)
			}
			return err
		}

		if bundleArgs.Tree != "" {
			if err := bundle.WriteTree(fsys, bundleArgs.Source, bundleArgs.Tree, logger); err != nil {
				return err
			}
		}

		color.Green("All files from '%s' have been bundled into '%s'", bundleArgs.Source, bundleArgs.Output)
		if n := len(summary.Skipped); n > 0 {
			color.Yellow("%d file(s) could not be read and were skipped", n)
		}
		return nil
	},
}

func init() {
	bundleCmd.Flags().StringVarP(&bundleArgs.Source, "source", "s", "src", "Directory to scan")
	bundleCmd.Flags().StringVarP(&bundleArgs.Output, "output", "o", "Code_Bundle.txt", "Path to write the bundle to")
	bundleCmd.Flags().StringVarP(&bundleArgs.Tree, "tree", "t", "", "Optional path to write a directory tree listing")
	RootCmd.AddCommand(bundleCmd)
}
