// Package level decodes Lode Runner binary level arrays into tile grids and
// renders them as text. It contains no external dependencies so the decode
// pipeline stays pure and testable.
package level

// Grid dimensions are fixed across every level in the format.
const (
	Width  = 28
	Height = 16
	Cells  = Width * Height
)

// TileKind identifies one of the seven terrain tiles the format can encode.
type TileKind uint8

const (
	TileBlank TileKind = iota
	TileBrick
	TileSolid
	TileLadder
	TileRope
	TileTrapBrick
	TileGold

	// MaxTileID is the highest valid tile id; decoded ids above it are
	// dropped, leaving the cell at its current value.
	MaxTileID = uint8(TileGold)
)

// tileGlyphs maps TileKind to its display character in a rendered row.
var tileGlyphs = [...]rune{
	TileBlank:     ' ',
	TileBrick:     '#',
	TileSolid:     '=',
	TileLadder:    'H',
	TileRope:      '-',
	TileTrapBrick: 'T',
	TileGold:      '$',
}

// Glyph returns the display character for the tile.
func (t TileKind) Glyph() rune {
	if int(t) < len(tileGlyphs) {
		return tileGlyphs[t]
	}
	return ' '
}

// Valid returns true if the tile id is one of the seven known kinds.
func (t TileKind) Valid() bool {
	return uint8(t) <= MaxTileID
}

// String returns a readable name for logs and test failures.
func (t TileKind) String() string {
	switch t {
	case TileBlank:
		return "blank"
	case TileBrick:
		return "brick"
	case TileSolid:
		return "solid"
	case TileLadder:
		return "ladder"
	case TileRope:
		return "rope"
	case TileTrapBrick:
		return "trap"
	case TileGold:
		return "gold"
	}
	return "invalid"
}

// Marker identifies an entity stamped on top of the terrain during overlay.
// Markers are a separate layer: they never replace the underlying TileKind.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerPlayer
	MarkerEnemy
	MarkerExitLadder
)

// Glyph returns the display character for the marker.
func (m Marker) Glyph() rune {
	switch m {
	case MarkerPlayer:
		return 'P'
	case MarkerEnemy:
		return 'E'
	case MarkerExitLadder:
		return '~'
	}
	return ' '
}
