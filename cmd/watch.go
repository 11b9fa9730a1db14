package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arithmode/arithmode/formatter"
	"github.com/arithmode/arithmode/internal/expand"
	tt "github.com/arithmode/arithmode/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch source files and expand policy invocations on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		expander, err := newExpander()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		watcher, err := expand.NewWatcher(expander, logger, reportWatchResult)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		defer watcher.Stop()

		if err := watcher.Start(args); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}

func reportWatchResult(result expand.Result) {
	if len(result.Diagnostics) > 0 {
		sourceCode, err := tt.ReadSourceCode(result.Path)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", result.Path), zap.Error(err))
			return
		}
		fmt.Println(formatter.Format(result.Diagnostics, sourceCode))
		return
	}
	if result.Changed {
		if err := os.WriteFile(result.Path, result.Output, 0o644); err != nil {
			logger.Error("Error writing file", zap.String("file", result.Path), zap.Error(err))
		}
	}
}
