package safemath

import "fortio.org/safecast"

// CheckedAdd returns a+b, or None if the sum does not fit in T.
func CheckedAdd[T Integer](a, b T) Option[T] {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return None[T]()
	}
	return Some(sum)
}

// CheckedSub returns a-b, or None if the difference does not fit in T.
func CheckedSub[T Integer](a, b T) Option[T] {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return None[T]()
	}
	return Some(diff)
}

// CheckedMul returns a*b, or None if the product does not fit in T.
func CheckedMul[T Integer](a, b T) Option[T] {
	if a == 0 || b == 0 {
		return Some[T](0)
	}
	p := a * b
	if p/b != a {
		return None[T]()
	}
	// two's-complement edge: MinOf(T) * -1 wraps back to MinOf(T) and
	// survives the division check above
	if b+1 == 0 && a < 0 && p == a && a-1 > 0 {
		return None[T]()
	}
	return Some(p)
}

// CheckedDiv returns a/b, or None on a zero divisor or the
// MinOf(T)/-1 overflow.
func CheckedDiv[T Integer](a, b T) Option[T] {
	if b == 0 {
		return None[T]()
	}
	if b+1 == 0 && a < 0 && a-1 > 0 {
		return None[T]()
	}
	return Some(a / b)
}

// CheckedRem returns a%b, or None on a zero divisor or the
// MinOf(T)%-1 overflow.
func CheckedRem[T Integer](a, b T) Option[T] {
	if b == 0 {
		return None[T]()
	}
	if b+1 == 0 && a < 0 && a-1 > 0 {
		return None[T]()
	}
	return Some(a % b)
}

// CheckedShl returns a<<count, or None when count is negative or not
// smaller than the width of T.
func CheckedShl[T Integer](a, count T) Option[T] {
	n, err := safecast.Conv[uint](count)
	if err != nil || n >= BitLen[T]() {
		return None[T]()
	}
	return Some(a << n)
}

// CheckedShr returns a>>count, or None when count is negative or not
// smaller than the width of T.
func CheckedShr[T Integer](a, count T) Option[T] {
	n, err := safecast.Conv[uint](count)
	if err != nil || n >= BitLen[T]() {
		return None[T]()
	}
	return Some(a >> n)
}
