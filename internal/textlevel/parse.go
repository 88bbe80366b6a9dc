package textlevel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/lrconv/internal/level"
)

// LevelDef is a level as read back from text: the name, raw map rows, and
// the hidden-ladder positions from the optional @ metadata line.
type LevelDef struct {
	Name          string
	Rows          []string
	HiddenLadders []level.Point
}

// legendGlyphs covers every character a map row may contain. '^' marks an
// exit-ladder column in hand-authored levels; the converter never emits it
// but the loader accepts it.
const legendGlyphs = " #=H-T$PE~^"

// ParseLevel parses a single-level .txt document.
func ParseLevel(data []byte) (LevelDef, error) {
	var def LevelDef
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		switch {
		case def.Name == "" && isNameLine(line):
			def.Name = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "@ "):
			pts, err := parseCoordList(strings.TrimPrefix(line, "@ "))
			if err != nil {
				return def, err
			}
			def.HiddenLadders = pts
		default:
			def.Rows = append(def.Rows, line)
		}
	}
	if def.Name == "" {
		return def, fmt.Errorf("textlevel: missing '# name' line")
	}
	return def, nil
}

// isNameLine distinguishes a "# Level Name" header from a map row that
// happens to start with a brick. A name line starts with '#' and its tail
// contains at least one letter; tile rows after the header never reach this
// check because the name is already set.
func isNameLine(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	return strings.ContainsFunc(line[1:], unicode.IsLetter)
}

// ParsePack parses a .nlp pack into its metadata and levels. Pack metadata
// lines start with "##"; levels are separated by lines holding only "---".
func ParsePack(data []byte) (PackMeta, []LevelDef, error) {
	var meta PackMeta
	var defs []LevelDef
	var current []string
	inLevel := false

	flush := func() error {
		if !inLevel || len(current) == 0 {
			return nil
		}
		def, err := ParseLevel([]byte(strings.Join(current, "\n")))
		if err != nil {
			return err
		}
		defs = append(defs, def)
		current = current[:0]
		return nil
	}

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		switch {
		case line == "---":
			if err := flush(); err != nil {
				return meta, nil, err
			}
			inLevel = true
		case strings.HasPrefix(line, "## "):
			if inLevel {
				current = append(current, line)
				continue
			}
			parseMetaLine(&meta, strings.TrimPrefix(line, "## "))
		default:
			if inLevel {
				current = append(current, line)
			}
		}
	}
	if err := flush(); err != nil {
		return meta, nil, err
	}
	if meta.Name == "" {
		return meta, nil, fmt.Errorf("textlevel: pack has no '## name' line")
	}
	return meta, defs, nil
}

func parseMetaLine(meta *PackMeta, rest string) {
	switch {
	case strings.HasPrefix(rest, "Author: "):
		meta.Author = strings.TrimPrefix(rest, "Author: ")
	case strings.HasPrefix(rest, "Description: "):
		meta.Description = strings.TrimPrefix(rest, "Description: ")
	default:
		if meta.Name == "" {
			meta.Name = rest
		}
	}
}

// parseCoordList parses "x1,y1 x2,y2 ..." into points.
func parseCoordList(s string) ([]level.Point, error) {
	var pts []level.Point
	for _, tok := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(tok, ",")
		if !ok {
			return nil, fmt.Errorf("textlevel: bad coordinate %q", tok)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("textlevel: bad coordinate %q: %w", tok, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("textlevel: bad coordinate %q: %w", tok, err)
		}
		pts = append(pts, level.P(x, y))
	}
	return pts, nil
}

// Validate checks a parsed level for the fixed 28x16 geometry, a legend-only
// character set, and exactly one player spawn.
func Validate(def LevelDef) error {
	if len(def.Rows) != level.Height {
		return fmt.Errorf("textlevel: %s: expected %d rows, got %d", def.Name, level.Height, len(def.Rows))
	}
	players := 0
	for y, row := range def.Rows {
		if len(row) != level.Width {
			return fmt.Errorf("textlevel: %s: row %d has %d chars, expected %d", def.Name, y, len(row), level.Width)
		}
		for x, ch := range row {
			if !strings.ContainsRune(legendGlyphs, ch) {
				return fmt.Errorf("textlevel: %s: unknown glyph %q at (%d,%d)", def.Name, ch, x, y)
			}
			if ch == 'P' {
				players++
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("textlevel: %s: expected exactly one player spawn, got %d", def.Name, players)
	}
	for _, p := range def.HiddenLadders {
		if !p.InBounds() {
			return fmt.Errorf("textlevel: %s: hidden ladder %v out of range", def.Name, p)
		}
	}
	return nil
}
