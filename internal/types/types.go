package types

import (
	"go/token"
	"os"
	"strings"
)

// Diagnostic reports one failed rewrite invocation site. The host keeps
// processing the rest of the file; a diagnostic never aborts it.
type Diagnostic struct {
	Policy   string
	Filename string
	Message  string
	Expr     string
	Start    token.Position
	End      token.Position
}

// SourceCode stores the content of a source file, line by line.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(content), nil
}

// NewSourceCode splits raw source into a SourceCode.
func NewSourceCode(content []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(content), "\n")}
}
