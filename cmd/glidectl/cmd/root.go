package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	storePath string
	logger    *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "glidectl",
	Short: "Inspect and edit Glide editor preferences",
	Long: `glidectl works with the editor's preference store from the
command line: listing keys, reading and writing flags, and resetting
one-time prompts without launching the editor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			setupLogger()
		}
		logger.Error(err.Error())
		return err
	}
	return nil
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the preference store file")
}
