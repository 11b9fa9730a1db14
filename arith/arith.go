// Package arith marks expression sites for the arithmode expander.
//
// A call like
//
//	n := arith.Wrapping(a + b*c)
//
// type-checks as written, and `arithmode expand` replaces the whole call
// with the rewritten expression. The markers themselves never run: an
// unexpanded marker reaching execution panics, because its argument was
// already evaluated with Go's default wrapping operators and the
// requested policy cannot be applied after the fact.
package arith

import "github.com/arithmode/arithmode/safemath"

func unexpanded(policy string) string {
	return "arith." + policy + " invocation was not expanded; run `arithmode expand` over this file"
}

// Panicking marks expr for the panic-on-overflow rewrite.
func Panicking[T any](expr T) T {
	panic(unexpanded("Panicking"))
}

// Wrapping marks expr for the wrap-on-overflow rewrite.
func Wrapping[T any](expr T) T {
	panic(unexpanded("Wrapping"))
}

// Saturating marks expr for the clamp-on-overflow rewrite.
func Saturating[T any](expr T) T {
	panic(unexpanded("Saturating"))
}

// Checked marks expr for the optional-result rewrite. The expanded form
// evaluates to a safemath.Option that is absent if any step overflows.
func Checked[T any](expr T) safemath.Option[T] {
	panic(unexpanded("Checked"))
}
