package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	s = Move(s, 1, 3)
	assert.Equal(t, []int{0, 2, 3, 1, 4}, s)

	s = []int{0, 1, 2, 3, 4}
	s = Move(s, 3, 0)
	assert.Equal(t, []int{3, 0, 1, 2, 4}, s)

	s = []int{0, 1, 2}
	s = Move(s, 1, 1)
	assert.Equal(t, []int{0, 1, 2}, s)
}

func TestSwap(t *testing.T) {
	s := []int{0, 1, 2}
	Swap(s, 0, 2)
	assert.Equal(t, []int{2, 1, 0}, s)
}
