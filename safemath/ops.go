package safemath

import "cmp"

// Operator functions for the checked mode: ZipMap and Map need the
// pass-through operators as values, so each one exists here as a named
// generic function.

// Eq reports a == b.
func Eq[T comparable](a, b T) bool { return a == b }

// NotEq reports a != b.
func NotEq[T comparable](a, b T) bool { return a != b }

// Less reports a < b.
func Less[T cmp.Ordered](a, b T) bool { return a < b }

// LessEq reports a <= b.
func LessEq[T cmp.Ordered](a, b T) bool { return a <= b }

// Greater reports a > b.
func Greater[T cmp.Ordered](a, b T) bool { return a > b }

// GreaterEq reports a >= b.
func GreaterEq[T cmp.Ordered](a, b T) bool { return a >= b }

// And returns a && b. Both operands are already evaluated by the time
// the zip chain applies it; there is no short circuit.
func And(a, b bool) bool { return a && b }

// Or returns a || b, without a short circuit.
func Or(a, b bool) bool { return a || b }

// BitAnd returns a & b.
func BitAnd[T Integer](a, b T) T { return a & b }

// BitOr returns a | b.
func BitOr[T Integer](a, b T) T { return a | b }

// BitXor returns a ^ b.
func BitXor[T Integer](a, b T) T { return a ^ b }

// AndNot returns a &^ b.
func AndNot[T Integer](a, b T) T { return a &^ b }

// Neg returns -v, wrapping for MinOf(T).
func Neg[T Integer](v T) T { return -v }

// Pos returns +v.
func Pos[T Integer](v T) T { return +v }

// Not returns !v.
func Not(v bool) bool { return !v }

// BitNot returns ^v.
func BitNot[T Integer](v T) T { return ^v }
