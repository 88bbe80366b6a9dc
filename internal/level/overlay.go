package level

// applyOverlay stamps the header's entities onto the decoded grid and
// returns the exit-ladder overlap list.
//
// Order matters: player first, then enemies in list order (co-located
// enemies last-write-win), then exit ladders in list order. An exit ladder
// only lands on blank terrain with no marker; anything else already at that
// position suppresses the ladder and records the overlap instead, so hidden
// ladders (typically beneath gold) stay recoverable. Out-of-range points of
// any kind are dropped silently.
func applyOverlay(g *Grid, h Header) []Point {
	if h.Player.InBounds() {
		g.SetMarker(h.Player, MarkerPlayer)
	}

	for _, p := range h.Enemies {
		if p.InBounds() {
			g.SetMarker(p, MarkerEnemy)
		}
	}

	var overlaps []Point
	for _, p := range h.ExitLadders {
		if !p.InBounds() {
			continue
		}
		if c := g.At(p); c.Tile == TileBlank && c.Marker == MarkerNone {
			g.SetMarker(p, MarkerExitLadder)
		} else {
			overlaps = append(overlaps, p)
		}
	}
	return overlaps
}
