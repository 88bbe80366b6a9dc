package textlevel

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/lrconv/internal/level"
)

// PackMeta is the header block of a .nlp level pack.
type PackMeta struct {
	Name        string
	Author      string
	Description string
}

// Emit renders one decoded level in the single-file text format:
//
//	# Level Name
//	@ x1,y1 x2,y2        (only when overlaps exist)
//	<16 map rows>
func Emit(d *level.DecodedLevel) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(DisplayName(d.Name))
	sb.WriteByte('\n')

	if line := overlapLine(d.Overlaps); line != "" {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	for _, row := range d.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// overlapLine formats the hidden-ladder metadata line, or "" when there are
// no overlaps.
func overlapLine(overlaps []level.Point) string {
	if len(overlaps) == 0 {
		return ""
	}
	coords := make([]string, len(overlaps))
	for i, p := range overlaps {
		coords[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return "@ " + strings.Join(coords, " ")
}

// WritePack writes a .nlp pack: metadata lines, then every level separated
// by "---" lines.
//
//	## Pack Name
//	## Author: name
//	## Description: text
//	---
//	<level>
//	---
//	<level>
func WritePack(w io.Writer, meta PackMeta, levels []*level.DecodedLevel) error {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(meta.Name)
	sb.WriteByte('\n')
	if meta.Author != "" {
		sb.WriteString("## Author: ")
		sb.WriteString(meta.Author)
		sb.WriteByte('\n')
	}
	if meta.Description != "" {
		sb.WriteString("## Description: ")
		sb.WriteString(meta.Description)
		sb.WriteByte('\n')
	}

	for _, d := range levels {
		sb.WriteString("---\n")
		sb.WriteString(Emit(d))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("textlevel: writing pack: %w", err)
	}
	return nil
}
