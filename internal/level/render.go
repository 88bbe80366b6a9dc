package level

import "strings"

// Rows renders the grid as Height lines of exactly Width characters each.
// Entity markers take precedence over the terrain glyph.
func Rows(g *Grid) []string {
	rows := make([]string, Height)
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		sb.Reset()
		sb.Grow(Width)
		for x := 0; x < Width; x++ {
			sb.WriteRune(g.At(P(x, y)).Glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}
