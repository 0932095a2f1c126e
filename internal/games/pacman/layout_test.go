package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]string{
		"#####",
		"#.o_#",
		"#O",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, l.Rows())
	assert.Equal(t, 5, l.Cols())
	assert.Equal(t, CellWall, l.At(0, 0))
	assert.Equal(t, CellPellet, l.At(1, 1))
	assert.Equal(t, CellPowerPellet, l.At(1, 2))
	assert.Equal(t, CellEmpty, l.At(1, 3))
	assert.Equal(t, CellPowerPellet, l.At(2, 1))

	// Short rows are padded
	assert.Equal(t, CellEmpty, l.At(2, 4))
	assert.Equal(t, CellEmpty, l.At(-1, 0))
	assert.Equal(t, CellEmpty, l.At(0, 99))
}

func TestParseLayoutErrors(t *testing.T) {
	_, err := ParseLayout(nil)
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = ParseLayout([]string{"", ""})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = ParseLayout([]string{"#x#"})
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}

func TestLayoutStringRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#.o #",
		"#####",
	}
	l, err := ParseLayout(rows)
	require.NoError(t, err)
	assert.Equal(t, "#####\n#.o #\n#####", l.String())
}
