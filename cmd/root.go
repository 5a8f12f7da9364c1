package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bundlex/pkg/logging"
	"bundlex/pkg/version"
)

var (
	logger *zap.Logger
	debug  bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bundlex",
	Short: "bundlex is a CLI tool for bundling a source tree into one file",
	Long:  `bundlex walks a directory tree and concatenates every readable text file into a single bundle file, one headered record per source file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			if err := logging.Setup(true, "bundlex", version.Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it with
// the provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
