package safemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint8(15), SaturatingAdd(uint8(5), 10))
	assert.Equal(t, uint8(255), SaturatingAdd(uint8(255), 1))
	assert.Equal(t, uint8(255), SaturatingAdd(uint8(200), 60))
	assert.Equal(t, int8(127), SaturatingAdd(int8(120), 10))
	assert.Equal(t, int8(-128), SaturatingAdd(int8(-120), -10))
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint32(0), SaturatingSub(uint32(0), 1))
	assert.Equal(t, int8(-128), SaturatingSub(int8(-120), 10))
	assert.Equal(t, int8(127), SaturatingSub(int8(120), -10))
}

func TestSaturatingMul(t *testing.T) {
	assert.Equal(t, int8(120), SaturatingMul(int8(12), 10))
	assert.Equal(t, int8(127), SaturatingMul(int8(16), 8))
	assert.Equal(t, int8(-128), SaturatingMul(int8(16), -9))
	assert.Equal(t, uint8(255), SaturatingMul(uint8(16), 16))
	assert.Equal(t, int8(127), SaturatingMul(int8(-128), -1))
}

func TestSaturatingDivRem(t *testing.T) {
	assert.Equal(t, int8(33), SaturatingDiv(int8(100), 3))
	assert.Equal(t, int8(127), SaturatingDiv(int8(-128), -1))
	assert.Equal(t, int8(0), SaturatingRem(int8(-128), -1))

	assert.Panics(t, func() { SaturatingDiv(int8(1), 0) })
	assert.Panics(t, func() { SaturatingRem(int8(1), 0) })
}

func TestRangeHelpers(t *testing.T) {
	assert.Equal(t, uint8(255), MaxOf[uint8]())
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, int8(127), MaxOf[int8]())
	assert.Equal(t, int8(-128), MinOf[int8]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, uint(8), BitLen[uint8]())
	assert.Equal(t, uint(64), BitLen[int64]())
}
