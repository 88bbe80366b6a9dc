package level

// Header holds the entity placements and body encoding decoded from the
// front of a level array. Respawn points are carried for completeness but
// never affect the rendered map.
type Header struct {
	Player      Point
	Enemies     []Point
	ExitLadders []Point
	Respawns    []Point
	Encoding    Encoding
}

// respawnCandidates is the fixed priority order for trial respawn counts.
// Four is the common case across the shipped level set, so it is tried
// first; the remaining counts break ties in this exact order.
var respawnCandidates = [...]int{4, 0, 1, 2, 3, 5, 6}

// resolveHeader consumes the unambiguous prefix (player position, counted
// enemy list, counted exit-ladder list) and then trial-decodes the ambiguous
// tail: the respawn list carries no count byte, so each candidate count is
// tried in priority order and validated by simulating the body decode that
// the discriminator byte after it would select.
//
// On success the cursor is left at the first body byte. The resolver tracks
// how many candidates it tried in stats.
func resolveHeader(cur *Cursor, stats *DecodeStats) (Header, error) {
	var h Header

	player, err := cur.ReadPoint()
	if err != nil {
		return h, err
	}
	h.Player = player

	enemyCount, err := cur.ReadByte()
	if err != nil {
		return h, err
	}
	for i := 0; i < int(enemyCount); i++ {
		p, err := cur.ReadPoint()
		if err != nil {
			return h, err
		}
		h.Enemies = append(h.Enemies, p)
	}

	ladderCount, err := cur.ReadByte()
	if err != nil {
		return h, err
	}
	for i := 0; i < int(ladderCount); i++ {
		p, err := cur.ReadPoint()
		if err != nil {
			return h, err
		}
		h.ExitLadders = append(h.ExitLadders, p)
	}

	prefixEnd := cur.Pos()

	for _, count := range respawnCandidates {
		if stats != nil {
			stats.HeaderAttempts++
		}
		cur.Seek(prefixEnd)

		respawns, ok := readRespawns(cur, count)
		if !ok {
			continue
		}

		disc, err := cur.ReadByte()
		if err != nil {
			continue
		}
		enc := Encoding(disc)
		if !enc.Valid() {
			continue
		}
		if !validateBody(enc, cur.Rest()) {
			continue
		}

		h.Respawns = respawns
		h.Encoding = enc
		return h, nil
	}

	return h, ErrHeaderAmbiguous
}

// readRespawns reads count coordinate pairs, reporting false when the data
// runs out before the candidate is complete.
func readRespawns(cur *Cursor, count int) ([]Point, bool) {
	respawns := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		p, err := cur.ReadPoint()
		if err != nil {
			return nil, false
		}
		respawns = append(respawns, p)
	}
	return respawns, true
}

// validateBody checks whether rest could plausibly be a body in the given
// encoding, without committing any decode.
//
// For the RLE encodings the run stream is simulated: the cumulative run
// total must land exactly on the 448-cell grid and every run's tile id must
// be a known kind. A zero run length terminates the stream. For the packed
// grid encoding it is enough that the full 224 bytes are present.
func validateBody(enc Encoding, rest []byte) bool {
	switch enc {
	case EncodingRowRLE, EncodingColumnRLE:
		cells := 0
		for _, b := range rest {
			if cells >= Cells {
				break
			}
			tile, run := unpackRun(b)
			if run == 0 {
				break
			}
			if !tile.Valid() {
				return false
			}
			cells += run
		}
		return cells == Cells
	case EncodingGrid:
		return len(rest) >= gridBodySize
	}
	return false
}
