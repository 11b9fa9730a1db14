package rewriter

import (
	"fmt"
	"go/ast"
	"go/token"
)

// semantics is the per-mode strategy. The walker owns the traversal shape;
// a semantics decides what becomes of arithmetic nodes, pass-through
// operators, unary operators, and literals.
type semantics interface {
	rewriteArith(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error)
	rewriteCompare(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error)
	rewriteUnary(w *walker, expr *ast.UnaryExpr, depth int) (ast.Expr, error)
	liftLiteral(w *walker, lit *ast.BasicLit) ast.Expr
}

func semanticsFor(mode Mode) (semantics, error) {
	switch mode {
	case ModePanicking:
		return panickingSemantics{}, nil
	case ModeWrapping:
		return wrappingSemantics{}, nil
	case ModeSaturating:
		return saturatingSemantics{}, nil
	case ModeChecked:
		return checkedSemantics{}, nil
	default:
		return nil, fmt.Errorf("%w: mode %s", ErrUnsupportedExpression, mode)
	}
}

// inertUnary keeps a unary node untouched, operand included. Only binary
// arithmetic needs overflow handling on decomposition, so the panicking,
// wrapping, and saturating modes treat unary operators as structurally
// inert.
func inertUnary(expr *ast.UnaryExpr) (ast.Expr, error) {
	return expr, nil
}

// rebuildBinary keeps the operator and replaces the operands. Used by the
// three non-checked modes for the logical/comparison/bitwise family.
func rebuildBinary(op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return &ast.BinaryExpr{X: left, Op: op, Y: right}, nil
}

type panickingSemantics struct{}

func (panickingSemantics) rewriteArith(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return call(w.opts.Qualifier, "Must"+arithOpNames[op], left, right), nil
}

func (panickingSemantics) rewriteCompare(_ *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return rebuildBinary(op, left, right)
}

func (panickingSemantics) rewriteUnary(_ *walker, expr *ast.UnaryExpr, _ int) (ast.Expr, error) {
	return inertUnary(expr)
}

func (panickingSemantics) liftLiteral(_ *walker, lit *ast.BasicLit) ast.Expr {
	return lit
}

type wrappingSemantics struct{}

func (wrappingSemantics) rewriteArith(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return call(w.opts.Qualifier, "Wrapping"+arithOpNames[op], left, right), nil
}

func (wrappingSemantics) rewriteCompare(_ *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return rebuildBinary(op, left, right)
}

func (wrappingSemantics) rewriteUnary(_ *walker, expr *ast.UnaryExpr, _ int) (ast.Expr, error) {
	return inertUnary(expr)
}

func (wrappingSemantics) liftLiteral(_ *walker, lit *ast.BasicLit) ast.Expr {
	return lit
}

type saturatingSemantics struct{}

func (saturatingSemantics) rewriteArith(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	if op == token.SHL || op == token.SHR {
		// Saturating shifts have no stable semantics without the
		// experimental wrapper type. Refusing beats emitting wrong code.
		if !w.opts.SaturatingShifts {
			return nil, fmt.Errorf("%w: saturating %s requires the saturating-shift capability", ErrUnsupportedOperator, op)
		}
		return call(w.opts.SatQualifier, arithOpNames[op], left, right), nil
	}
	return call(w.opts.Qualifier, "Saturating"+arithOpNames[op], left, right), nil
}

func (saturatingSemantics) rewriteCompare(_ *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	return rebuildBinary(op, left, right)
}

func (saturatingSemantics) rewriteUnary(_ *walker, expr *ast.UnaryExpr, _ int) (ast.Expr, error) {
	return inertUnary(expr)
}

func (saturatingSemantics) liftLiteral(_ *walker, lit *ast.BasicLit) ast.Expr {
	return lit
}

// checkedSemantics lifts every sub-result into an optional value. Absence
// propagates through the remaining tree via the zip chains, so one
// overflow anywhere nullifies the whole top-level result.
type checkedSemantics struct{}

func (checkedSemantics) rewriteArith(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	q := w.opts.Qualifier
	return call(q, "ZipThen", left, right, funcRef(q, "Checked"+arithOpNames[op])), nil
}

func (checkedSemantics) rewriteCompare(w *walker, op token.Token, left, right ast.Expr) (ast.Expr, error) {
	q := w.opts.Qualifier
	return call(q, "ZipMap", left, right, funcRef(q, compareOpFuncs[op])), nil
}

func (checkedSemantics) rewriteUnary(w *walker, expr *ast.UnaryExpr, depth int) (ast.Expr, error) {
	name, ok := unaryOpFuncs[expr.Op]
	if !ok {
		return nil, fmt.Errorf("%w: unary %s", ErrUnsupportedOperator, expr.Op)
	}
	operand, err := w.rewrite(expr.X, depth+1)
	if err != nil {
		return nil, err
	}
	q := w.opts.Qualifier
	return call(q, "Map", operand, funcRef(q, name)), nil
}

func (checkedSemantics) liftLiteral(w *walker, lit *ast.BasicLit) ast.Expr {
	return call(w.opts.Qualifier, "Some", lit)
}
