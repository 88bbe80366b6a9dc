package level

import (
	"bytes"
	"errors"
	"testing"
)

// rle packs one run byte from a tile id and run length.
func rle(tile TileKind, run int) byte {
	return byte(tile)<<5 | byte(run&0x1F)
}

// rleFillBody returns a run stream covering all 448 cells with one tile.
func rleFillBody(tile TileKind) []byte {
	var body []byte
	remaining := Cells
	for remaining > 0 {
		run := remaining
		if run > 31 {
			run = 31
		}
		body = append(body, rle(tile, run))
		remaining -= run
	}
	return body
}

// buildLevel assembles a raw level byte array from its parts.
func buildLevel(player Point, enemies, ladders, respawns []Point, enc Encoding, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(player.X))
	buf.WriteByte(byte(player.Y))
	buf.WriteByte(byte(len(enemies)))
	for _, p := range enemies {
		buf.WriteByte(byte(p.X))
		buf.WriteByte(byte(p.Y))
	}
	buf.WriteByte(byte(len(ladders)))
	for _, p := range ladders {
		buf.WriteByte(byte(p.X))
		buf.WriteByte(byte(p.Y))
	}
	for _, p := range respawns {
		buf.WriteByte(byte(p.X))
		buf.WriteByte(byte(p.Y))
	}
	buf.WriteByte(byte(enc))
	buf.Write(body)
	return buf.Bytes()
}

func TestResolveHeaderPrefixFields(t *testing.T) {
	enemies := []Point{P(5, 6), P(7, 8)}
	ladders := []Point{P(9, 10)}
	respawns := []Point{P(1, 1), P(2, 2), P(3, 3), P(4, 4)}
	data := buildLevel(P(1, 2), enemies, ladders, respawns, EncodingRowRLE, rleFillBody(TileBrick))

	cur := NewCursor(data)
	h, err := resolveHeader(cur, nil)
	if err != nil {
		t.Fatalf("resolveHeader() failed: %v", err)
	}

	if h.Player != P(1, 2) {
		t.Errorf("player: expected (1,2), got %v", h.Player)
	}
	if len(h.Enemies) != 2 || h.Enemies[0] != P(5, 6) || h.Enemies[1] != P(7, 8) {
		t.Errorf("unexpected enemies: %v", h.Enemies)
	}
	if len(h.ExitLadders) != 1 || h.ExitLadders[0] != P(9, 10) {
		t.Errorf("unexpected exit ladders: %v", h.ExitLadders)
	}
	if len(h.Respawns) != 4 {
		t.Errorf("expected 4 respawns, got %d", len(h.Respawns))
	}
	if h.Encoding != EncodingRowRLE {
		t.Errorf("expected row-rle encoding, got %v", h.Encoding)
	}
}

func TestResolveHeaderLeavesCursorAtBody(t *testing.T) {
	body := rleFillBody(TileGold)
	respawns := []Point{P(1, 1), P(2, 2), P(3, 3), P(4, 4)}
	data := buildLevel(P(0, 0), nil, nil, respawns, EncodingRowRLE, body)

	cur := NewCursor(data)
	if _, err := resolveHeader(cur, nil); err != nil {
		t.Fatalf("resolveHeader() failed: %v", err)
	}

	// Body = everything after player(2) + counts(2) + respawns(8) + disc(1).
	if cur.Pos() != 13 {
		t.Errorf("expected cursor at body start 13, got %d", cur.Pos())
	}
	if cur.Remaining() != len(body) {
		t.Errorf("expected %d body bytes remaining, got %d", len(body), cur.Remaining())
	}
}

func TestResolveHeaderNonDefaultRespawnCount(t *testing.T) {
	// Zero respawn points: candidate 4 must fail validation and the
	// resolver must fall through to candidate 0.
	data := buildLevel(P(0, 0), nil, nil, nil, EncodingRowRLE, rleFillBody(TileSolid))

	var stats DecodeStats
	cur := NewCursor(data)
	h, err := resolveHeader(cur, &stats)
	if err != nil {
		t.Fatalf("resolveHeader() failed: %v", err)
	}
	if len(h.Respawns) != 0 {
		t.Errorf("expected 0 respawns, got %d", len(h.Respawns))
	}
	if stats.HeaderAttempts != 2 {
		t.Errorf("expected 2 attempts (counts 4 then 0), got %d", stats.HeaderAttempts)
	}
}

func TestResolveHeaderDeterministic(t *testing.T) {
	respawns := []Point{P(2, 2), P(4, 4)}
	data := buildLevel(P(3, 3), []Point{P(1, 1)}, nil, respawns, EncodingColumnRLE, rleFillBody(TileLadder))

	first, err := resolveHeader(NewCursor(data), nil)
	if err != nil {
		t.Fatalf("resolveHeader() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		h, err := resolveHeader(NewCursor(data), nil)
		if err != nil {
			t.Fatalf("run %d: resolveHeader() failed: %v", i, err)
		}
		if len(h.Respawns) != len(first.Respawns) || h.Encoding != first.Encoding {
			t.Fatalf("run %d: resolution differs: %d/%v vs %d/%v",
				i, len(h.Respawns), h.Encoding, len(first.Respawns), first.Encoding)
		}
	}
}

func TestResolveHeaderAmbiguous(t *testing.T) {
	// A discriminator byte of 0xFF with no valid candidate anywhere.
	data := []byte{0, 0, 0, 0, 0xFF}
	_, err := resolveHeader(NewCursor(data), nil)
	if !errors.Is(err, ErrHeaderAmbiguous) {
		t.Errorf("expected ErrHeaderAmbiguous, got %v", err)
	}
}

func TestResolveHeaderTruncatedPrefix(t *testing.T) {
	// Enemy count says two pairs but the data ends after one byte.
	data := []byte{1, 1, 2, 5}
	_, err := resolveHeader(NewCursor(data), nil)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		rest []byte
		want bool
	}{
		{"row rle exact fill", EncodingRowRLE, rleFillBody(TileBrick), true},
		{"row rle short", EncodingRowRLE, []byte{rle(TileBrick, 31)}, false},
		{"row rle overshoot", EncodingRowRLE, append(rleFillBody(TileBrick), rle(TileBrick, 5)), true},
		{"row rle bad tile id", EncodingRowRLE, []byte{0xFF}, false},
		{"row rle early terminator", EncodingRowRLE, []byte{rle(TileBrick, 31), 0x00}, false},
		{"column rle exact fill", EncodingColumnRLE, rleFillBody(TileRope), true},
		{"grid enough bytes", EncodingGrid, make([]byte, gridBodySize), true},
		{"grid extra bytes", EncodingGrid, make([]byte, gridBodySize+10), true},
		{"grid short", EncodingGrid, make([]byte, gridBodySize-1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateBody(tc.enc, tc.rest); got != tc.want {
				t.Errorf("validateBody(%v) = %v, want %v", tc.enc, got, tc.want)
			}
		})
	}
}
