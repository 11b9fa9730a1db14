package expand

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Files expands every .go file reachable from paths. Directories are
// walked recursively. Files are independent, so they are processed on a
// bounded worker pool; the rewrite inside each invocation stays
// single-threaded and purely functional.
func Files(ctx context.Context, logger *zap.Logger, e *Expander, paths []string, showProgress bool) ([]Result, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("expanding"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	resultChan := make(chan Result, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := e.ExpandFile(path)
			if err != nil {
				if logger != nil {
					logger.Error("Error expanding file", zap.String("path", path), zap.Error(err))
				}
				errorChan <- err
			} else {
				resultChan <- result
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}(file)
	}

	wg.Wait()
	close(resultChan)
	close(errorChan)

	if err := <-errorChan; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for result := range resultChan {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".go" {
				files = append(files, path)
			}
			continue
		}

		err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && filepath.Ext(filePath) == ".go" {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", path, err)
		}
	}
	return files, nil
}
