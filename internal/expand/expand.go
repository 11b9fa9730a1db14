// Package expand is the host glue around the rewriter: it finds marker
// invocations like arith.Wrapping(a + b) in Go source, rewrites each
// argument under the named policy, and splices the generated expression
// back into the file. Failed sites become diagnostics; the rest of the
// file is still processed.
package expand

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/arithmode/arithmode/internal/rewriter"
	tt "github.com/arithmode/arithmode/internal/types"
)

// Defaults for the expander configuration.
const (
	DefaultMarker        = "arith"
	DefaultMarkerImport  = "github.com/arithmode/arithmode/arith"
	DefaultRuntimeImport = "github.com/arithmode/arithmode/safemath"
	DefaultSatImport     = "github.com/arithmode/arithmode/safemath/satint"
)

// markerPolicies maps marker function names to policies.
var markerPolicies = map[string]rewriter.Mode{
	"Panicking":  rewriter.ModePanicking,
	"Wrapping":   rewriter.ModeWrapping,
	"Saturating": rewriter.ModeSaturating,
	"Checked":    rewriter.ModeChecked,
}

// Config controls how invocation sites are recognized and what the
// spliced code references.
type Config struct {
	// Marker is the package identifier of invocation sites.
	Marker string
	// MarkerImport is the marker package's import path, dropped from a
	// file once no invocations remain.
	MarkerImport string
	// RuntimeImport is added to files that gained runtime calls.
	RuntimeImport string
	// SatImport is added to files that gained saturating-shift calls.
	SatImport string
	// Rewriter options are applied to every site.
	Rewriter rewriter.Options
}

func (c Config) withDefaults() Config {
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	if c.MarkerImport == "" {
		c.MarkerImport = DefaultMarkerImport
	}
	if c.RuntimeImport == "" {
		c.RuntimeImport = DefaultRuntimeImport
	}
	if c.SatImport == "" {
		c.SatImport = DefaultSatImport
	}
	return c
}

// Expander rewrites marker invocations in source files. It holds no
// per-file state and is safe to reuse across files.
type Expander struct {
	cfg Config
}

// New returns an Expander for cfg.
func New(cfg Config) *Expander {
	return &Expander{cfg: cfg.withDefaults()}
}

// Result is the outcome of expanding one file.
type Result struct {
	Path        string
	Output      []byte
	Diagnostics []tt.Diagnostic
	// Changed reports whether any site was rewritten.
	Changed bool
}

// ExpandFile expands path and returns the result without writing it
// back.
func (e *Expander) ExpandFile(path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return e.ExpandSource(path, src)
}

// ExpandSource expands every marker invocation in src. The returned
// output always holds complete file text: the input bytes when nothing
// matched, the re-rendered file otherwise. Site failures are returned as
// diagnostics, not errors; the error is reserved for unparseable files.
func (e *Expander) ExpandSource(filename string, src []byte) (Result, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return Result{}, fmt.Errorf("parsing %s: %w", filename, err)
	}

	result := Result{Path: filename, Output: src}

	// Bottom-up: an invocation nested inside another invocation's
	// argument is expanded first; the outer rewrite then sees a plain
	// call and passes it through opaquely.
	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		mode, ok := e.markerMode(call)
		if !ok {
			return true
		}

		if len(call.Args) != 1 {
			result.Diagnostics = append(result.Diagnostics,
				e.diagnostic(fset, src, call, mode, fmt.Errorf("expected exactly one expression argument, got %d", len(call.Args))))
			return true
		}

		rewritten, err := rewriter.Rewrite(mode, rewriter.Grouped(call.Args[0]), e.cfg.Rewriter)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics,
				e.diagnostic(fset, src, call, mode, err))
			return true
		}

		c.Replace(rewritten)
		result.Changed = true
		return true
	})

	if !result.Changed {
		return result, nil
	}

	e.fixImports(fset, file)

	var buf strings.Builder
	if err := format.Node(&buf, fset, file); err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", filename, err)
	}
	result.Output = []byte(buf.String())
	return result, nil
}

// markerMode matches calls of the shape <marker>.<Policy>(...).
func (e *Expander) markerMode(call *ast.CallExpr) (rewriter.Mode, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return 0, false
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != e.cfg.Marker {
		return 0, false
	}
	mode, ok := markerPolicies[sel.Sel.Name]
	return mode, ok
}

func (e *Expander) diagnostic(fset *token.FileSet, src []byte, call *ast.CallExpr, mode rewriter.Mode, err error) tt.Diagnostic {
	start := fset.Position(call.Pos())
	end := fset.Position(call.End())

	var exprText string
	if len(call.Args) == 1 {
		from := fset.Position(call.Args[0].Pos()).Offset
		to := fset.Position(call.Args[0].End()).Offset
		if from >= 0 && to <= len(src) && from < to {
			exprText = string(src[from:to])
		}
	}

	return tt.Diagnostic{
		Policy:   mode.String(),
		Filename: start.Filename,
		Message:  err.Error(),
		Expr:     exprText,
		Start:    start,
		End:      end,
	}
}

// fixImports adds the runtime imports the rewritten code references and
// drops the marker import when the last invocation is gone.
func (e *Expander) fixImports(fset *token.FileSet, file *ast.File) {
	opts := e.cfg.Rewriter
	qual := opts.Qualifier
	if qual == "" {
		qual = rewriter.DefaultQualifier
	}
	satQual := opts.SatQualifier
	if satQual == "" {
		satQual = rewriter.DefaultSatQualifier
	}

	if usesQualifier(file, qual) {
		astutil.AddImport(fset, file, e.cfg.RuntimeImport)
	}
	if usesQualifier(file, satQual) {
		astutil.AddImport(fset, file, e.cfg.SatImport)
	}
	if !usesQualifier(file, e.cfg.Marker) {
		astutil.DeleteImport(fset, file, e.cfg.MarkerImport)
	}
}

// usesQualifier reports whether any selector in file is rooted at the
// package identifier name.
func usesQualifier(file *ast.File, name string) bool {
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		if found {
			return false
		}
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == name {
			found = true
			return false
		}
		return true
	})
	return found
}
