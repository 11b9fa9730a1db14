package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arithmode/arithmode"
)

var (
	rewriteMode      string
	rewriteQualifier string
	rewriteSatShifts bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [expression]",
	Short: "Rewrite a single expression under a policy",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one expression")
			os.Exit(1)
		}

		config, err := arithmode.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		modeName := rewriteMode
		if modeName == "" {
			modeName = config.Mode
		}
		mode, err := arithmode.ParseMode(modeName)
		if err != nil {
			fmt.Println(arithmode.Diagnostic(err))
			os.Exit(1)
		}

		opts := []arithmode.Option{
			arithmode.WithSaturatingShifts(rewriteSatShifts || config.SaturatingShifts),
		}
		if rewriteQualifier != "" {
			opts = append(opts, arithmode.WithQualifier(rewriteQualifier))
		} else if config.Qualifier != "" {
			opts = append(opts, arithmode.WithQualifier(config.Qualifier))
		}

		out, err := arithmode.Rewrite(mode, args[0], opts...)
		if err != nil {
			fmt.Println(arithmode.Diagnostic(err))
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteMode, "mode", "m", "", "Overflow policy: panicking, wrapping, saturating, or checked")
	rewriteCmd.Flags().StringVar(&rewriteQualifier, "qualifier", "", "Package identifier for generated runtime calls")
	rewriteCmd.Flags().BoolVar(&rewriteSatShifts, "sat-shifts", false, "Enable the saturating-shift capability")
}
