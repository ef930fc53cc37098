package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Mod(13, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
}

func TestFloorDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, FloorDiv(13, 12))
	assert.Equal(-1, FloorDiv(-1, 12))
	assert.Equal(-1, FloorDiv(-12, 12))
	assert.Equal(-2, FloorDiv(-13, 12))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, GetKeysSorted(m))
}
