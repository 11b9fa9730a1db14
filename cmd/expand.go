package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arithmode/arithmode"
	"github.com/arithmode/arithmode/formatter"
	"github.com/arithmode/arithmode/internal/expand"
	"github.com/arithmode/arithmode/internal/rewriter"
	tt "github.com/arithmode/arithmode/internal/types"
)

var (
	writeFiles       bool
	expandJsonOutput bool
	expandOutPath    string
)

var expandCmd = &cobra.Command{
	Use:   "expand [paths...]",
	Short: "Expand policy invocations in source files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		expander, err := newExpander()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		results, err := expand.Files(ctx, logger, expander, args, !expandJsonOutput)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		diagCount := 0
		for _, result := range results {
			diagCount += len(result.Diagnostics)
			if writeFiles && result.Changed {
				if err := os.WriteFile(result.Path, result.Output, 0o644); err != nil {
					logger.Error("Error writing file", zap.String("file", result.Path), zap.Error(err))
					os.Exit(1)
				}
			} else if !writeFiles && result.Changed {
				fmt.Println(string(result.Output))
			}
		}

		printDiagnostics(logger, results, expandJsonOutput, expandOutPath)

		if diagCount > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	expandCmd.Flags().BoolVarP(&writeFiles, "write", "w", false, "Write expanded output back to the source files")
	expandCmd.Flags().BoolVar(&expandJsonOutput, "json", false, "Output diagnostics in JSON format")
	expandCmd.Flags().StringVarP(&expandOutPath, "output", "o", "", "Output path (when using JSON)")
}

// newExpander builds the expander from the configuration file plus the
// shared flags.
func newExpander() (*expand.Expander, error) {
	config, err := arithmode.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return expand.New(expand.Config{
		Marker:        config.Marker,
		RuntimeImport: config.RuntimeImport,
		Rewriter: rewriter.Options{
			Qualifier:        config.Qualifier,
			SaturatingShifts: config.SaturatingShifts,
		},
	}), nil
}

func printDiagnostics(logger *zap.Logger, results []expand.Result, isJson bool, jsonOutput string) {
	diagsByFile := make(map[string][]tt.Diagnostic)
	for _, result := range results {
		for _, d := range result.Diagnostics {
			diagsByFile[d.Filename] = append(diagsByFile[d.Filename], d)
		}
	}

	sortedFiles := make([]string, 0, len(diagsByFile))
	for filename := range diagsByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJson {
		// text output
		for _, filename := range sortedFiles {
			sourceCode, err := tt.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			output := formatter.Format(diagsByFile[filename], sourceCode)
			fmt.Println(output)
		}
		return
	}

	// JSON output
	d, err := json.Marshal(diagsByFile)
	if err != nil {
		logger.Error("Error marshalling diagnostics to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
