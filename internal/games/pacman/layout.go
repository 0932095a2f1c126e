package pacman

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the code stored in each maze cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPowerPellet
)

// IsCollectible reports whether the cell still holds a pellet of either kind.
func (c Cell) IsCollectible() bool {
	return c == CellPellet || c == CellPowerPellet
}

var (
	ErrEmptyLayout  = errors.New("layout is empty")
	ErrUnknownGlyph = errors.New("unknown layout glyph")
)

// Layout is a parsed maze: rows of cells, all rows the same width.
type Layout [][]Cell

// ParseLayout converts text rows into a Layout.
//
//	'#'      wall
//	'.'      pellet
//	'o'      power pellet
//	' ', '_' empty
//
// Short rows are padded with empty cells.
func ParseLayout(rows []string) (Layout, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyLayout
	}

	layout := make(Layout, len(rows))
	for r, row := range rows {
		layout[r] = make([]Cell, width)
		for c, ch := range []rune(row) {
			switch ch {
			case '#':
				layout[r][c] = CellWall
			case '.':
				layout[r][c] = CellPellet
			case 'o', 'O':
				layout[r][c] = CellPowerPellet
			case ' ', '_':
				layout[r][c] = CellEmpty
			default:
				return nil, fmt.Errorf("row %d col %d: %q: %w", r, c, ch, ErrUnknownGlyph)
			}
		}
	}
	return layout, nil
}

// Rows returns the number of rows.
func (l Layout) Rows() int {
	return len(l)
}

// Cols returns the number of columns.
func (l Layout) Cols() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// At returns the cell at (row, col); out-of-range is empty.
func (l Layout) At(row, col int) Cell {
	if row < 0 || row >= l.Rows() || col < 0 || col >= l.Cols() {
		return CellEmpty
	}
	return l[row][col]
}

// String renders the layout back to glyph rows.
func (l Layout) String() string {
	var b strings.Builder
	for r, row := range l {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(cellRune(c))
		}
	}
	return b.String()
}

// cellRune is the layout glyph for a cell.
func cellRune(c Cell) rune {
	switch c {
	case CellWall:
		return '#'
	case CellPellet:
		return '.'
	case CellPowerPellet:
		return 'o'
	default:
		return ' '
	}
}
