package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsAlwaysNonNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Mod(12, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(1, Mod(-23, 12))
	assert.Equal(5, Mod(29, 12))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, Clamp(1.5, 0.0, 1.0))
	assert.Equal(0.0, Clamp(-0.2, 0.0, 1.0))
	assert.Equal(0.3, Clamp(0.3, 0.0, 1.0))
}
