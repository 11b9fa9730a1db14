package safemath

import "fmt"

// The Must variants implement the panicking mode: overflow is treated as
// a programmer error and terminates loudly.

func mustGet[T Integer](o Option[T], op string, a, b T) T {
	v, ok := o.Get()
	if !ok {
		panic(fmt.Sprintf("safemath: %s(%v, %v) overflows %T", op, a, b, a))
	}
	return v
}

// MustAdd returns a+b or panics if the sum does not fit in T.
func MustAdd[T Integer](a, b T) T { return mustGet(CheckedAdd(a, b), "Add", a, b) }

// MustSub returns a-b or panics if the difference does not fit in T.
func MustSub[T Integer](a, b T) T { return mustGet(CheckedSub(a, b), "Sub", a, b) }

// MustMul returns a*b or panics if the product does not fit in T.
func MustMul[T Integer](a, b T) T { return mustGet(CheckedMul(a, b), "Mul", a, b) }

// MustDiv returns a/b or panics on a zero divisor or MinOf(T)/-1.
func MustDiv[T Integer](a, b T) T { return mustGet(CheckedDiv(a, b), "Div", a, b) }

// MustRem returns a%b or panics on a zero divisor or MinOf(T)%-1.
func MustRem[T Integer](a, b T) T { return mustGet(CheckedRem(a, b), "Rem", a, b) }

// MustShl returns a<<count or panics on an out-of-range count.
func MustShl[T Integer](a, count T) T { return mustGet(CheckedShl(a, count), "Shl", a, count) }

// MustShr returns a>>count or panics on an out-of-range count.
func MustShr[T Integer](a, count T) T { return mustGet(CheckedShr(a, count), "Shr", a, count) }
