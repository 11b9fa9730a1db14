// Package rewriter turns ordinary infix arithmetic into explicit
// overflow-handling calls. One bottom-up walk over a go/ast expression
// tree builds a brand-new tree; the input is never mutated, and the walk
// either produces a complete replacement or fails with a single error.
package rewriter

import (
	"fmt"
	"go/ast"
	"go/token"
)

// DefaultQualifier is the package identifier the generated calls are
// qualified with when Options.Qualifier is empty.
const DefaultQualifier = "safemath"

// DefaultSatQualifier qualifies the saturating-shift calls emitted when
// the capability is enabled.
const DefaultSatQualifier = "satint"

// DefaultMaxDepth bounds expression nesting. Traversal is recursive, so
// pathological depth fails fast instead of exhausting the stack.
const DefaultMaxDepth = 512

// Options configure one rewrite invocation.
type Options struct {
	// Qualifier is the package identifier referenced by generated calls.
	Qualifier string

	// SatQualifier is the package identifier for saturating-shift calls.
	SatQualifier string

	// SaturatingShifts enables the experimental saturating-shift
	// rewrites. Off by default: without the capability, << and >> under
	// the saturating mode fail with ErrUnsupportedOperator.
	SaturatingShifts bool

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.Qualifier == "" {
		o.Qualifier = DefaultQualifier
	}
	if o.SatQualifier == "" {
		o.SatQualifier = DefaultSatQualifier
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Grouped wraps expr in a transparent grouping node: the rewriter recurses
// into it without emitting parentheses. It is how a host splices an
// extracted sub-expression into a traversal without disturbing its shape.
// A parenthesis node with no source position is taken to be such a group;
// parentheses that came from the parser always carry one.
func Grouped(expr ast.Expr) ast.Expr {
	return &ast.ParenExpr{Lparen: token.NoPos, X: expr, Rparen: token.NoPos}
}

// Rewrite applies mode's overflow-handling rewrite to expr and returns the
// replacement tree. Nodes outside the arithmetic families pass through
// opaquely: identifiers, selectors, calls and conversions, indexing,
// dereference and address-of are returned verbatim, and the rewrite never
// looks inside them.
func Rewrite(mode Mode, expr ast.Expr, opts Options) (ast.Expr, error) {
	opts = opts.withDefaults()
	sem, err := semanticsFor(mode)
	if err != nil {
		return nil, err
	}
	w := &walker{sem: sem, opts: opts}
	return w.rewrite(expr, 0)
}

type walker struct {
	sem  semantics
	opts Options
}

func (w *walker) rewrite(expr ast.Expr, depth int) (ast.Expr, error) {
	if depth > w.opts.MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d levels", ErrUnsupportedExpression, w.opts.MaxDepth)
	}

	switch e := expr.(type) {
	case *ast.BinaryExpr:
		left, err := w.rewrite(e.X, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := w.rewrite(e.Y, depth+1)
		if err != nil {
			return nil, err
		}
		switch {
		case isArithOp(e.Op):
			return w.sem.rewriteArith(w, e.Op, left, right)
		case isCompareOp(e.Op):
			return w.sem.rewriteCompare(w, e.Op, left, right)
		default:
			// Assignment operators land here. Go's expression grammar
			// cannot produce them, but hand-built trees can.
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperator, e.Op)
		}

	case *ast.UnaryExpr:
		if e.Op == token.AND {
			// address-of: the reference form, opaque
			return expr, nil
		}
		return w.sem.rewriteUnary(w, e, depth)

	case *ast.BasicLit:
		return w.sem.liftLiteral(w, e), nil

	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.StarExpr:
		return expr, nil

	case *ast.ParenExpr:
		inner, err := w.rewrite(e.X, depth+1)
		if err != nil {
			return nil, err
		}
		if !e.Lparen.IsValid() {
			// transparent group, see Grouped
			return inner, nil
		}
		return &ast.ParenExpr{X: inner}, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedExpression, expr)
	}
}

// call builds qual.name(args...).
func call(qual, name string, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{
		Fun:  &ast.SelectorExpr{X: ast.NewIdent(qual), Sel: ast.NewIdent(name)},
		Args: args,
	}
}

// funcRef builds the qual.name selector used as a function-valued argument.
func funcRef(qual, name string) ast.Expr {
	return &ast.SelectorExpr{X: ast.NewIdent(qual), Sel: ast.NewIdent(name)}
}
