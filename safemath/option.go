package safemath

import "fmt"

// Option is a value that may be absent. The checked rewrite lifts every
// literal into a present Option and threads absence through the rest of
// the expression: one overflow anywhere makes the whole result absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Pair holds two values zipped out of two present Options.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two Options into an Option of their Pair; absent if
// either side is absent.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.present && b.present {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}

// Map applies f to a present value.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.present {
		return None[B]()
	}
	return Some(f(o.value))
}

// AndThen chains a fallible step onto a present value.
func AndThen[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.present {
		return None[B]()
	}
	return f(o.value)
}

// ZipThen zips two Options and chains a fallible binary operation. It is
// the combining form every rewritten arithmetic operator uses under the
// checked mode.
func ZipThen[A, B, C any](a Option[A], b Option[B], f func(A, B) Option[C]) Option[C] {
	return AndThen(Zip(a, b), func(p Pair[A, B]) Option[C] {
		return f(p.First, p.Second)
	})
}

// ZipMap zips two Options and applies an infallible binary operation,
// the combining form for comparisons and bitwise operators under the
// checked mode.
func ZipMap[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	return Map(Zip(a, b), func(p Pair[A, B]) C {
		return f(p.First, p.Second)
	})
}
