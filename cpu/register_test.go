package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	var reg Registers
	assert.Equal("[0, 0, 0, 0, 0, 0]", reg.String())

	reg.Set(0, 7)
	reg.Set(5, -9)
	assert.Equal(int64(7), reg.Get(0))
	assert.Equal(int64(-9), reg.Get(5))
	assert.Equal("[7, 0, 0, 0, 0, -9]", reg.String())
	assert.Equal("[7, 0, 0, 0, 0, -9]", fmt.Sprintf("%v", &reg))

	values := reg.Values()
	assert.Equal([]int64{7, 0, 0, 0, 0, -9}, values)

	// Snapshot is a copy.
	values[0] = 100
	assert.Equal(int64(7), reg.Get(0))
}

func TestValidRegister(t *testing.T) {
	assert := assert.New(t)

	for r := range int64(REGISTER_COUNT) {
		assert.True(ValidRegister(r))
	}
	assert.False(ValidRegister(-1))
	assert.False(ValidRegister(REGISTER_COUNT))
	assert.False(ValidRegister(1 << 40))
}
