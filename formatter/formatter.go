// Package formatter renders expansion diagnostics for terminal output
// with the offending source line and a caret marker underneath.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/arithmode/arithmode/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	policyStyle  = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	messageStyle = color.New(color.FgRed)
)

// Format renders diagnostics with caret arrows pointing at the failed
// invocation in the source.
func Format(diags []tt.Diagnostic, source *tt.SourceCode) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(fmt.Sprintf("%s %s:%d:%d: %s: %s\n",
			errorStyle.Sprint("error:"),
			fileStyle.Sprint(d.Filename), d.Start.Line, d.Start.Column,
			policyStyle.Sprint(d.Policy),
			messageStyle.Sprint(d.Message)))

		if d.Start.Line < 1 || d.Start.Line > len(source.Lines) {
			continue
		}
		line := source.Lines[d.Start.Line-1]
		builder.WriteString(line + "\n")

		startColumn := visualColumn(line, d.Start.Column)
		endColumn := visualColumn(line, d.End.Column)
		arrowLength := endColumn - startColumn
		if d.End.Line != d.Start.Line || arrowLength < 1 {
			arrowLength = 1
		}
		builder.WriteString(strings.Repeat(" ", startColumn))
		builder.WriteString(strings.Repeat("^", arrowLength))
		builder.WriteString("\n")
	}
	return builder.String()
}

// visualColumn converts a byte column to a display column, counting tabs
// by tabWidth.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
