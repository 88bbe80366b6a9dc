package level

import "fmt"

// Point is a 2D grid coordinate. X increases to the right, Y downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds returns true if the point lies inside the fixed grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Cell is one grid position: a terrain tile plus an optional entity marker.
type Cell struct {
	Tile   TileKind
	Marker Marker
}

// Glyph returns the character rendered for this cell. The marker, when
// present, takes precedence over the terrain tile.
func (c Cell) Glyph() rune {
	if c.Marker != MarkerNone {
		return c.Marker.Glyph()
	}
	return c.Tile.Glyph()
}

// Grid is the fixed 28x16 tile board. Cells are stored in row-major order
// (index = y*Width + x) and default to blank terrain with no marker.
type Grid struct {
	cells [Cells]Cell
}

// NewGrid returns an all-blank grid.
func NewGrid() *Grid {
	return &Grid{}
}

func index(p Point) int {
	return p.Y*Width + p.X
}

// At returns the cell at p, or a zero cell if p is out of bounds.
func (g *Grid) At(p Point) Cell {
	if !p.InBounds() {
		return Cell{}
	}
	return g.cells[index(p)]
}

// SetTile writes a terrain tile. Out-of-bounds writes are ignored.
func (g *Grid) SetTile(p Point, t TileKind) {
	if p.InBounds() {
		g.cells[index(p)].Tile = t
	}
}

// SetMarker stamps an entity marker. Out-of-bounds writes are ignored.
func (g *Grid) SetMarker(p Point, m Marker) {
	if p.InBounds() {
		g.cells[index(p)].Marker = m
	}
}

// FilledCount returns the number of cells holding non-blank terrain.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Tile != TileBlank {
			n++
		}
	}
	return n
}

// CountTile returns how many cells hold the given terrain tile.
func (g *Grid) CountTile(t TileKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Tile == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{}
	out.cells = g.cells
	return out
}

// Equal returns true if both grids hold identical cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}
