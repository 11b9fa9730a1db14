package safemath

// Wrapping arithmetic reduces every result modulo the operand width.
// These never fail; division by zero panics exactly like the built-in
// operator does.

// WrappingAdd returns a+b modulo the width of T.
func WrappingAdd[T Integer](a, b T) T { return a + b }

// WrappingSub returns a-b modulo the width of T.
func WrappingSub[T Integer](a, b T) T { return a - b }

// WrappingMul returns a*b modulo the width of T.
func WrappingMul[T Integer](a, b T) T { return a * b }

// WrappingDiv returns a/b; the one wrapped case is MinOf(T)/-1, which
// yields MinOf(T).
func WrappingDiv[T Integer](a, b T) T { return a / b }

// WrappingRem returns a%b.
func WrappingRem[T Integer](a, b T) T { return a % b }

// WrappingShl returns a<<count with count taken modulo the width of T.
func WrappingShl[T Integer](a, count T) T {
	return a << (uint(count) & (BitLen[T]() - 1))
}

// WrappingShr returns a>>count with count taken modulo the width of T.
func WrappingShr[T Integer](a, count T) T {
	return a >> (uint(count) & (BitLen[T]() - 1))
}
