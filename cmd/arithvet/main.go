package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/arithmode/arithmode/internal/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
