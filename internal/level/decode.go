package level

import "errors"

// Decode failures are always scoped to a single level: batch callers log
// the level, count the failure, and move on.
var (
	// ErrTruncated reports a read past the end of the byte array while
	// parsing the unconditional header prefix.
	ErrTruncated = errors.New("level: truncated input")

	// ErrHeaderAmbiguous reports that no respawn-count/discriminator
	// candidate produced a body that validates.
	ErrHeaderAmbiguous = errors.New("level: cannot determine header format")

	// ErrUnknownEncoding reports a discriminator outside the three known
	// encodings. Header resolution filters these out, so it only fires on
	// a Header constructed by hand.
	ErrUnknownEncoding = errors.New("level: unknown body encoding")
)

// RawLevel is one named byte array as extracted from the source container.
type RawLevel struct {
	Name string
	Data []byte
}

// DecodeStats counts events that do not change the decode result but are
// worth surfacing: silently dropped tile ids and header candidates tried.
type DecodeStats struct {
	DroppedTiles   int
	HeaderAttempts int
}

// DecodedLevel is the complete decode output. It owns all of its data; no
// field aliases the raw input bytes.
type DecodedLevel struct {
	Name     string
	Header   Header
	Grid     *Grid
	Overlaps []Point
	Stats    DecodeStats
}

// Rows renders the level as Height lines of Width characters.
func (d *DecodedLevel) Rows() []string {
	return Rows(d.Grid)
}

// Decode runs the full pipeline on one level: resolve the header, decode
// the body under the resolved encoding, stamp the entity overlay.
//
// Decode is a pure function of raw.Data. Levels are independent, so callers
// may decode many levels concurrently.
func Decode(raw RawLevel) (*DecodedLevel, error) {
	out := &DecodedLevel{Name: raw.Name, Grid: NewGrid()}

	cur := NewCursor(raw.Data)
	h, err := resolveHeader(cur, &out.Stats)
	if err != nil {
		return nil, err
	}
	out.Header = h

	if err := decodeBody(h.Encoding, cur, out.Grid, &out.Stats); err != nil {
		return nil, err
	}

	out.Overlaps = applyOverlay(out.Grid, h)
	return out, nil
}
