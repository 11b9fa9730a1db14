package safemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustOps(t *testing.T) {
	assert.Equal(t, uint8(15), MustAdd(uint8(5), 10))
	assert.Equal(t, uint8(11), MustAdd(MustAdd(uint8(1), MustMul(uint8(2), 3)), 4))
	assert.Equal(t, int8(-42), MustSub(int8(0), 42))
	assert.Equal(t, uint8(4), MustShl(uint8(1), 2))
	assert.Equal(t, uint8(33), MustDiv(uint8(100), 3))
	assert.Equal(t, uint8(1), MustRem(uint8(100), 3))
}

func TestMustOpsPanicOnOverflow(t *testing.T) {
	assert.Panics(t, func() { MustAdd(uint8(255), 1) })
	assert.Panics(t, func() { MustAdd(uint8(5), 255) })
	assert.Panics(t, func() { MustSub(uint8(0), 1) })
	assert.Panics(t, func() { MustMul(uint8(16), 16) })
	assert.Panics(t, func() { MustDiv(uint8(1), 0) })
	assert.Panics(t, func() { MustRem(uint8(1), 0) })
	assert.Panics(t, func() { MustShl(uint8(1), 8) })
	assert.Panics(t, func() { MustShr(int8(1), -1) })
}
