package a

import "arith"

const tableSize = 64 * 1024 // constant folding, nothing to report

func raw(a, b int) int {
	return a + b // want `raw integer arithmetic "\+" without an overflow policy`
}

func rawShift(a uint8, n uint) uint8 {
	return a << n // want `raw integer arithmetic "<<" without an overflow policy`
}

func wrapped(a, b int) int {
	return arith.Wrapping(a + b)
}

func saturated(a, b uint8) uint8 {
	return arith.Saturating(a * b)
}

func outsideWrapper(a, b int) int {
	return arith.Wrapping(a+b) - 1 // want `raw integer arithmetic "-" without an overflow policy`
}

func strings(s, t string) string {
	return s + t
}

func floats(x, y float64) float64 {
	return x * y
}
