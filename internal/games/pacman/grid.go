package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Geometry maps continuous coordinates onto maze cells.
type Geometry struct {
	TileSize float64
	OffsetX  float64
	OffsetY  float64
}

// CellOf returns the (row, col) containing the point. The result may be out
// of range.
func (g Geometry) CellOf(p core.Vec) (row, col int) {
	return core.FloorDiv(p.Y, g.OffsetY, g.TileSize), core.FloorDiv(p.X, g.OffsetX, g.TileSize)
}

// CenterOf returns the center point of a cell.
func (g Geometry) CenterOf(row, col int) core.Vec {
	return core.V(
		g.OffsetX+(float64(col)+0.5)*g.TileSize,
		g.OffsetY+(float64(row)+0.5)*g.TileSize,
	)
}

// CollectResult tells what CollectPellet consumed.
type CollectResult int

const (
	CollectNone CollectResult = iota
	CollectRegular
	CollectPower
)

func (r CollectResult) String() string {
	switch r {
	case CollectRegular:
		return "regular"
	case CollectPower:
		return "power"
	default:
		return "none"
	}
}

// GridMap owns the maze cells and the collectible counters.
// Walls never change; collectibles only ever become empty, once.
type GridMap struct {
	cells     [][]Cell
	geom      Geometry
	total     int
	collected int
}

// NewGridMap builds a grid from layout, promoting up to powerPellets regular
// pellets to power pellets, chosen uniformly without replacement.
func NewGridMap(layout Layout, geom Geometry, powerPellets int, rng *rand.Rand) *GridMap {
	g := &GridMap{
		cells: make([][]Cell, len(layout)),
		geom:  geom,
	}
	for r, row := range layout {
		g.cells[r] = append([]Cell(nil), row...)
	}

	g.promotePowerPellets(powerPellets, rng)

	for _, row := range g.cells {
		for _, c := range row {
			if c.IsCollectible() {
				g.total++
			}
		}
	}
	return g
}

func (g *GridMap) promotePowerPellets(count int, rng *rand.Rand) {
	type pos struct{ r, c int }
	var candidates []pos
	for r, row := range g.cells {
		for c, cell := range row {
			if cell == CellPellet {
				candidates = append(candidates, pos{r, c})
			}
		}
	}

	for i := 0; i < count && len(candidates) > 0; i++ {
		idx := rng.Intn(len(candidates))
		p := candidates[idx]
		g.cells[p.r][p.c] = CellPowerPellet
		candidates[idx] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
}

// Rows returns the grid height in cells.
func (g *GridMap) Rows() int {
	return len(g.cells)
}

// Cols returns the grid width in cells.
func (g *GridMap) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Geometry returns the coordinate mapping of the grid.
func (g *GridMap) Geometry() Geometry {
	return g.geom
}

// Total is the number of collectibles present at construction.
func (g *GridMap) Total() int {
	return g.total
}

// Collected is the number of collectibles eaten so far.
func (g *GridMap) Collected() int {
	return g.collected
}

// Remaining is Total minus Collected.
func (g *GridMap) Remaining() int {
	return g.total - g.collected
}

func (g *GridMap) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// CellAt returns the cell code; out-of-bounds cells read as empty.
func (g *GridMap) CellAt(row, col int) Cell {
	if !g.inBounds(row, col) {
		return CellEmpty
	}
	return g.cells[row][col]
}

// IsWallAt reports whether the point lies inside a wall cell.
func (g *GridMap) IsWallAt(p core.Vec) bool {
	row, col := g.geom.CellOf(p)
	return g.CellAt(row, col) == CellWall
}

// CheckCollision tests the four corners of the square of half-size radius
// around (cx, cy). Corners outside the grid never collide.
func (g *GridMap) CheckCollision(cx, cy, radius float64) bool {
	corners := [4]core.Vec{
		core.V(cx-radius, cy-radius),
		core.V(cx+radius, cy-radius),
		core.V(cx-radius, cy+radius),
		core.V(cx+radius, cy+radius),
	}
	for _, p := range corners {
		if g.IsWallAt(p) {
			return true
		}
	}
	return false
}

// CollectPellet consumes the collectible in the cell containing (x, y).
func (g *GridMap) CollectPellet(x, y float64) CollectResult {
	row, col := g.geom.CellOf(core.V(x, y))
	if !g.inBounds(row, col) {
		return CollectNone
	}

	switch g.cells[row][col] {
	case CellPellet:
		g.cells[row][col] = CellEmpty
		g.collected++
		return CollectRegular
	case CellPowerPellet:
		g.cells[row][col] = CellEmpty
		g.collected++
		return CollectPower
	default:
		return CollectNone
	}
}

// Cells returns a copy of the cell grid for render snapshots.
func (g *GridMap) Cells() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for r, row := range g.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}
