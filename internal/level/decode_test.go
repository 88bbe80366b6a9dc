package level

import (
	"strings"
	"testing"
)

func TestDecodeGridLevelExample(t *testing.T) {
	// player=(1,1), no enemies, no ladders, 4 respawns, grid encoding,
	// 224 zero bytes: all blank except the player marker.
	respawns := []Point{P(0, 0), P(0, 0), P(0, 0), P(0, 0)}
	data := buildLevel(P(1, 1), nil, nil, respawns, EncodingGrid, make([]byte, gridBodySize))

	d, err := Decode(RawLevel{Name: "test", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	rows := d.Rows()
	if len(rows) != Height {
		t.Fatalf("expected %d rows, got %d", Height, len(rows))
	}
	for y, row := range rows {
		if len(row) != Width {
			t.Fatalf("row %d: expected %d chars, got %d", y, Width, len(row))
		}
		for x, ch := range row {
			want := ' '
			if x == 1 && y == 1 {
				want = 'P'
			}
			if ch != want {
				t.Errorf("(%d,%d): expected %q, got %q", x, y, want, ch)
			}
		}
	}
}

func TestDecodeRowRLELevel(t *testing.T) {
	// Bottom row of bricks under a blank playfield.
	body := []byte{}
	blanks := Cells - Width
	for blanks > 0 {
		run := blanks
		if run > 31 {
			run = 31
		}
		body = append(body, rle(TileBlank, run))
		blanks -= run
	}
	body = append(body, rle(TileBrick, 28))

	respawns := []Point{P(0, 0), P(0, 0), P(0, 0), P(0, 0)}
	data := buildLevel(P(0, 14), nil, nil, respawns, EncodingRowRLE, body)

	d, err := Decode(RawLevel{Name: "floor", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	rows := d.Rows()
	if rows[15] != strings.Repeat("#", Width) {
		t.Errorf("bottom row: expected all bricks, got %q", rows[15])
	}
	if rows[14][0] != 'P' {
		t.Errorf("expected player at (0,14), row is %q", rows[14])
	}
}

func TestDecodeOverlapExample(t *testing.T) {
	// Gold on every cell; an exit ladder over one of them stays hidden and
	// lands in the overlap list instead of the rendered rows.
	respawns := []Point{P(0, 0), P(0, 0), P(0, 0), P(0, 0)}
	data := buildLevel(P(0, 0), nil, []Point{P(3, 2)}, respawns, EncodingRowRLE, rleFillBody(TileGold))

	d, err := Decode(RawLevel{Name: "golden", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	rows := d.Rows()
	if rows[2][3] != '$' {
		t.Errorf("(3,2): expected '$', got %q", rows[2][3])
	}
	if len(d.Overlaps) != 1 || d.Overlaps[0] != P(3, 2) {
		t.Errorf("expected overlap at (3,2), got %v", d.Overlaps)
	}
	for _, row := range rows {
		if strings.ContainsRune(row, '~') {
			t.Errorf("suppressed ladder must not render: %q", row)
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	respawns := []Point{P(7, 7), P(8, 8), P(9, 9), P(10, 10)}
	data := buildLevel(P(2, 3), []Point{P(20, 10)}, []Point{P(6, 6)},
		respawns, EncodingColumnRLE, rleFillBody(TileBrick))

	first, err := Decode(RawLevel{Name: "same", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	firstRows := strings.Join(first.Rows(), "\n")

	for i := 0; i < 5; i++ {
		d, err := Decode(RawLevel{Name: "same", Data: data})
		if err != nil {
			t.Fatalf("run %d: Decode() failed: %v", i, err)
		}
		if got := strings.Join(d.Rows(), "\n"); got != firstRows {
			t.Fatalf("run %d: output differs", i)
		}
		if !d.Grid.Equal(first.Grid) {
			t.Fatalf("run %d: grids differ", i)
		}
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	respawns := []Point{P(0, 0), P(0, 0), P(0, 0), P(0, 0)}
	data := buildLevel(P(1, 1), nil, nil, respawns, EncodingRowRLE, rleFillBody(TileBrick))

	d, err := Decode(RawLevel{Name: "owned", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	before := strings.Join(d.Rows(), "\n")

	// Clobbering the raw bytes must not change the decoded level.
	for i := range data {
		data[i] = 0xEE
	}
	if got := strings.Join(d.Rows(), "\n"); got != before {
		t.Error("decoded level aliases the input bytes")
	}
}

func TestDecodeReportsDroppedTiles(t *testing.T) {
	body := make([]byte, gridBodySize)
	body[0] = 0xFF // two invalid nibbles
	respawns := []Point{P(0, 0), P(0, 0), P(0, 0), P(0, 0)}
	data := buildLevel(P(5, 5), nil, nil, respawns, EncodingGrid, body)

	d, err := Decode(RawLevel{Name: "noisy", Data: data})
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if d.Stats.DroppedTiles != 2 {
		t.Errorf("expected 2 dropped tiles, got %d", d.Stats.DroppedTiles)
	}
	if d.Stats.HeaderAttempts < 1 {
		t.Errorf("expected at least one header attempt, got %d", d.Stats.HeaderAttempts)
	}
}

func TestGlyphTable(t *testing.T) {
	tests := []struct {
		tile  TileKind
		glyph rune
	}{
		{TileBlank, ' '},
		{TileBrick, '#'},
		{TileSolid, '='},
		{TileLadder, 'H'},
		{TileRope, '-'},
		{TileTrapBrick, 'T'},
		{TileGold, '$'},
	}
	for _, tc := range tests {
		if got := tc.tile.Glyph(); got != tc.glyph {
			t.Errorf("%v: expected %q, got %q", tc.tile, tc.glyph, got)
		}
	}

	if MarkerPlayer.Glyph() != 'P' || MarkerEnemy.Glyph() != 'E' || MarkerExitLadder.Glyph() != '~' {
		t.Error("entity marker glyphs do not match the legend")
	}
}
