package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cycle"
)

func TestGraphemes_Segmentation(t *testing.T) {
	// "e" + combining acute is one user-perceived character, as is the
	// regional-indicator flag pair.
	g := cycle.NewGraphemes("né!\U0001F1FA\U0001F1F8")

	require.Equal(t, 4, g.Len())
	assert.Equal(t, "n", g.At(0))
	assert.Equal(t, "é", g.At(1))
	assert.Equal(t, "!", g.At(2))
	assert.Equal(t, "\U0001F1FA\U0001F1F8", g.At(3))
}

func TestGraphemes_Cursored(t *testing.T) {
	c := cycle.New[string](cycle.NewGraphemes("abc"), 0)

	v, _ := c.Seek(-1)
	assert.Equal(t, "c", v)
	v, _ = c.Seek(4)
	assert.Equal(t, "a", v)
}

func TestGraphemes_Empty(t *testing.T) {
	g := cycle.NewGraphemes("")
	assert.Equal(t, 0, g.Len())

	c := cycle.New[string](g, 0)
	_, ok := c.Peek()
	assert.False(t, ok)
}

func TestGraphemes_String(t *testing.T) {
	const s = "né \U0001F1FA\U0001F1F8"
	assert.Equal(t, s, cycle.NewGraphemes(s).String())
}
