package safemath

// Saturating arithmetic clamps to the operand type's extremes instead of
// overflowing. There are deliberately no saturating shifts here: shift
// saturation has no stable semantics without the experimental wrapper
// type in the satint package.

// SaturatingAdd returns a+b clamped to the range of T.
func SaturatingAdd[T Integer](a, b T) T {
	if sum, ok := CheckedAdd(a, b).Get(); ok {
		return sum
	}
	if b > 0 {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingSub returns a-b clamped to the range of T.
func SaturatingSub[T Integer](a, b T) T {
	if diff, ok := CheckedSub(a, b).Get(); ok {
		return diff
	}
	if b < 0 {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingMul returns a*b clamped to the range of T.
func SaturatingMul[T Integer](a, b T) T {
	if p, ok := CheckedMul(a, b).Get(); ok {
		return p
	}
	if (a < 0) == (b < 0) {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingDiv returns a/b; MinOf(T)/-1 clamps to MaxOf(T). Division by
// zero panics like the built-in operator.
func SaturatingDiv[T Integer](a, b T) T {
	if q, ok := CheckedDiv(a, b).Get(); ok {
		return q
	}
	if b == 0 {
		return a / b // keep the runtime's division-by-zero panic
	}
	return MaxOf[T]()
}

// SaturatingRem returns a%b; the MinOf(T)%-1 edge is 0 and needs no
// clamping. Division by zero panics like the built-in operator.
func SaturatingRem[T Integer](a, b T) T {
	if r, ok := CheckedRem(a, b).Get(); ok {
		return r
	}
	if b == 0 {
		return a % b
	}
	return 0
}
