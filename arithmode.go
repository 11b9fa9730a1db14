// Package arithmode rewrites arithmetic expressions into explicit
// overflow-handling calls.
//
// Instead of relying on Go's silently wrapping operators, a caller picks
// one of four policies and gets back source text with every arithmetic
// operator replaced by the matching safemath call:
//
//	out, err := arithmode.Wrapping("a + b*c")
//	// out == "safemath.WrappingAdd(a, safemath.WrappingMul(b, c))"
//
// The transformation is purely structural: nothing is evaluated, no types
// are inferred, and the input's own associativity and grouping decide the
// nesting of the generated calls.
package arithmode

import (
	"errors"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/arithmode/arithmode/internal/rewriter"
)

// ErrParse reports input text that is not a valid expression.
var ErrParse = errors.New("could not parse expression")

// Mode re-exports the rewrite policy selector.
type Mode = rewriter.Mode

// The four policies.
const (
	ModePanicking  = rewriter.ModePanicking
	ModeWrapping   = rewriter.ModeWrapping
	ModeSaturating = rewriter.ModeSaturating
	ModeChecked    = rewriter.ModeChecked
)

// ParseMode maps a policy name to its Mode.
func ParseMode(name string) (Mode, error) { return rewriter.ParseMode(name) }

// Option configures a rewrite.
type Option func(*rewriter.Options)

// WithQualifier changes the package identifier the generated calls are
// qualified with (default "safemath").
func WithQualifier(qual string) Option {
	return func(o *rewriter.Options) { o.Qualifier = qual }
}

// WithSaturatingShifts enables the experimental saturating-shift
// capability; without it, << and >> under the saturating mode fail.
func WithSaturatingShifts(enabled bool) Option {
	return func(o *rewriter.Options) { o.SaturatingShifts = enabled }
}

// WithMaxDepth overrides the expression nesting limit.
func WithMaxDepth(depth int) Option {
	return func(o *rewriter.Options) { o.MaxDepth = depth }
}

// Panicking rewrites src so every arithmetic operation panics on
// overflow.
func Panicking(src string, opts ...Option) (string, error) {
	return Rewrite(ModePanicking, src, opts...)
}

// Wrapping rewrites src so every arithmetic operation wraps modulo the
// operand width.
func Wrapping(src string, opts ...Option) (string, error) {
	return Rewrite(ModeWrapping, src, opts...)
}

// Saturating rewrites src so every arithmetic operation clamps to the
// operand type's min/max on overflow.
func Saturating(src string, opts ...Option) (string, error) {
	return Rewrite(ModeSaturating, src, opts...)
}

// Checked rewrites src so the whole expression evaluates to an optional
// value that is absent if any step overflows.
func Checked(src string, opts ...Option) (string, error) {
	return Rewrite(ModeChecked, src, opts...)
}

// Rewrite parses src as a single Go expression, applies mode's rewrite,
// and renders the replacement back to source text. The output is valid
// standalone expression text, suitable for splicing at the call site.
func Rewrite(mode Mode, src string, opts ...Option) (string, error) {
	var options rewriter.Options
	for _, opt := range opts {
		opt(&options)
	}

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	out, err := rewriter.Rewrite(mode, expr, options)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := format.Node(&buf, token.NewFileSet(), out); err != nil {
		return "", fmt.Errorf("rendering rewritten expression: %w", err)
	}
	return buf.String(), nil
}

// Diagnostic renders err as the single-line build diagnostic surfaced to
// the author at a failed invocation site.
func Diagnostic(err error) string {
	return "Error: " + err.Error()
}
