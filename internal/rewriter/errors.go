package rewriter

import "errors"

// Rewrite failures are terminal for the invocation: the caller gets either
// one complete output tree or one of these errors, never a partial tree.
var (
	// ErrUnsupportedExpression reports a syntax shape outside the
	// recognized set (statements, closures, composite literals, ...).
	ErrUnsupportedExpression = errors.New("unsupported expression")

	// ErrUnsupportedOperator reports an operator the rewrite cannot give
	// a meaning to: assignment operators under every mode, and shift
	// operators under the saturating mode when the saturating-shift
	// capability is disabled.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
