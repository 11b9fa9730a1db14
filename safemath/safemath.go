// Package safemath is the numeric runtime referenced by rewritten
// expressions. It provides fixed-width integer arithmetic in four
// flavors — checked, panicking, wrapping, saturating — plus the Option
// type and combinators the checked flavor chains its results through.
//
// The functions are ordinary generics so rewritten text type-checks
// against the operand types already present at the call site; nothing
// here ever widens an operand.
package safemath

import "unsafe"

// Signed is the constraint for the built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for the built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint for all fixed-width integer types.
type Integer interface {
	Signed | Unsigned
}

// BitLen reports the width of T in bits.
func BitLen[T Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < 0
}

// MinOf returns the smallest value representable in T.
func MinOf[T Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	var one T = 1
	return one << (BitLen[T]() - 1)
}

// MaxOf returns the largest value representable in T.
func MaxOf[T Integer]() T {
	if isSigned[T]() {
		return ^MinOf[T]()
	}
	var zero T
	return ^zero
}
