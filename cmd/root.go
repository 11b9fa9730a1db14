package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "arithmode [paths...]",
	Short:            "arithmode - rewrite arithmetic into explicit overflow-handling calls",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'arithmode' is entered
			_ = cmd.Help()
			return
		}
		// Format: arithmode [path1 path2 ...] => behaves like the expand subcommand
		expandCmd.Run(expandCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for processing")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(watchCmd)
}
