// Package satint is the experimental saturating-shift capability. The
// saturating rewrite refuses shift operators unless this package is
// opted in, because there is no stable saturating-shift primitive to
// fall back on; the semantics here are the package's own definition and
// may change.
package satint

import (
	"fortio.org/safecast"

	"github.com/arithmode/arithmode/safemath"
)

// Shl returns a<<count with saturation: when the count is out of range
// or high bits would be lost, the result clamps to the extreme of T on
// the side of a's sign.
func Shl[T safemath.Integer](a, count T) T {
	if a == 0 {
		return 0
	}
	n, err := safecast.Conv[uint](count)
	if err != nil || n >= safemath.BitLen[T]() {
		return clamp(a)
	}
	r := a << n
	if r>>n == a && (r < 0) == (a < 0) {
		return r
	}
	return clamp(a)
}

// Shr returns a>>count; counts out of range drain the value completely,
// yielding 0 for non-negative a and -1 for negative a (the arithmetic
// shift fixpoints).
func Shr[T safemath.Integer](a, count T) T {
	if r, ok := safemath.CheckedShr(a, count).Get(); ok {
		return r
	}
	if a < 0 {
		var zero T
		return zero - 1
	}
	return 0
}

func clamp[T safemath.Integer](a T) T {
	if a < 0 {
		return safemath.MinOf[T]()
	}
	return safemath.MaxOf[T]()
}
