package safemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappingAdd(t *testing.T) {
	assert.Equal(t, uint8(15), WrappingAdd(uint8(5), 10))
	assert.Equal(t, uint8(0), WrappingAdd(uint8(255), 1))
	assert.Equal(t, uint8(4), WrappingAdd(uint8(5), 255))
	assert.Equal(t, int8(-128), WrappingAdd(int8(127), 1))
}

func TestWrappingSub(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), WrappingSub(uint32(0), 1))
	assert.Equal(t, int8(127), WrappingSub(int8(-128), 1))
}

func TestWrappingMulDivRem(t *testing.T) {
	assert.Equal(t, uint8(0), WrappingMul(uint8(16), 16))
	assert.Equal(t, int8(-128), WrappingMul(int8(-128), -1))
	assert.Equal(t, int8(-128), WrappingDiv(int8(-128), -1))
	assert.Equal(t, int8(0), WrappingRem(int8(-128), -1))
}

func TestWrappingShifts(t *testing.T) {
	assert.Equal(t, int8(-128), WrappingShl(int8(-1), 7))
	// counts reduce modulo the bit width
	assert.Equal(t, int8(-1), WrappingShl(int8(-1), 8))
	assert.Equal(t, int16(-128), WrappingShr(int16(-128), 64))
	assert.Equal(t, int8(-1), WrappingShr(int8(-128), 7))
	assert.Equal(t, uint8(2), WrappingShl(uint8(1), 9))
}
