package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/cycle"
)

func TestSlice_LenAt(t *testing.T) {
	s := cycle.Slice[string]{"x", "y", "z"}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "x", s.At(0))
	assert.Equal(t, "z", s.At(2))
}

func TestSlice_Empty(t *testing.T) {
	var s cycle.Slice[int]
	assert.Equal(t, 0, s.Len())
}

func TestSlice_At_OutOfRangePanics(t *testing.T) {
	s := cycle.Slice[int]{1, 2, 3}

	assert.Panics(t, func() { s.At(3) })
	assert.Panics(t, func() { s.At(-1) })
}
