package level

// Encoding is the discriminator byte selecting how a level body is packed.
type Encoding uint8

const (
	// EncodingRowRLE fills cells left-to-right, top-to-bottom from a
	// run-length stream.
	EncodingRowRLE Encoding = 0
	// EncodingColumnRLE fills cells top-to-bottom, left-to-right from a
	// run-length stream.
	EncodingColumnRLE Encoding = 1
	// EncodingGrid stores the whole board as 224 nibble-packed bytes.
	EncodingGrid Encoding = 2
)

// gridBodySize is the byte length of a packed-grid body: 14 bytes per row
// (two 4-bit tiles per byte), 16 rows.
const gridBodySize = Width / 2 * Height

// Valid returns true for the three known encodings.
func (e Encoding) Valid() bool {
	return e <= EncodingGrid
}

// String returns the encoding name used in logs and the catalog.
func (e Encoding) String() string {
	switch e {
	case EncodingRowRLE:
		return "row-rle"
	case EncodingColumnRLE:
		return "column-rle"
	case EncodingGrid:
		return "grid"
	}
	return "unknown"
}

// unpackRun splits an RLE byte into its tile id (top 3 bits) and run
// length (bottom 5 bits).
func unpackRun(b byte) (TileKind, int) {
	return TileKind(b >> 5 & 0x07), int(b & 0x1F)
}

// decodeBody fills g from the cursor using the resolved encoding. Cells the
// stream never writes keep their blank default; an undersized stream is a
// partially blank map, not an error.
func decodeBody(enc Encoding, cur *Cursor, g *Grid, stats *DecodeStats) error {
	switch enc {
	case EncodingGrid:
		return decodeGridBody(cur, g, stats)
	case EncodingRowRLE:
		decodeRLEBody(cur, g, stats, rowMajorPoint)
		return nil
	case EncodingColumnRLE:
		decodeRLEBody(cur, g, stats, columnMajorPoint)
		return nil
	}
	return ErrUnknownEncoding
}

// decodeGridBody reads exactly 224 bytes, two tiles per byte: the high
// nibble lands on the even x, the low nibble on the odd x to its right.
// Nibbles above the highest tile id are dropped, leaving the cell blank.
func decodeGridBody(cur *Cursor, g *Grid, stats *DecodeStats) error {
	for y := 0; y < Height; y++ {
		for xb := 0; xb < Width/2; xb++ {
			b, err := cur.ReadByte()
			if err != nil {
				return err
			}
			x := xb * 2
			writeTile(g, P(x, y), TileKind(b>>4&0x0F), stats)
			writeTile(g, P(x+1, y), TileKind(b&0x0F), stats)
		}
	}
	return nil
}

// rowMajorPoint maps a flat cell index to its coordinate for row RLE.
func rowMajorPoint(i int) Point {
	return P(i%Width, i/Width)
}

// columnMajorPoint maps a flat cell index to its coordinate for column RLE.
func columnMajorPoint(i int) Point {
	return P(i/Height, i%Height)
}

// decodeRLEBody expands the run stream until the grid is full, the stream's
// zero-run terminator appears, or the input runs dry.
func decodeRLEBody(cur *Cursor, g *Grid, stats *DecodeStats, at func(int) Point) {
	cell := 0
	for cell < Cells {
		b, err := cur.ReadByte()
		if err != nil {
			return
		}
		tile, run := unpackRun(b)
		if run == 0 {
			return
		}
		for n := 0; n < run && cell < Cells; n++ {
			writeTile(g, at(cell), tile, stats)
			cell++
		}
	}
}

// writeTile stores a tile, silently dropping ids outside the known range
// and counting the drop so callers can surface it.
func writeTile(g *Grid, p Point, t TileKind, stats *DecodeStats) {
	if !t.Valid() {
		if stats != nil {
			stats.DroppedTiles++
		}
		return
	}
	g.SetTile(p, t)
}
