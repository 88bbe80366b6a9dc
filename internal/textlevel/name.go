// Package textlevel emits decoded levels in the NodeRunner text format and
// parses that format back for validation. The binary side stays one-way:
// there is no text-to-binary encoder.
package textlevel

import (
	"fmt"
	"regexp"
	"strconv"
)

var levelNamePattern = regexp.MustCompile(`^level(\d+)`)

// DisplayName maps a source array name to the human-readable level name:
// "test" becomes "Test Level", a name starting with "levelN" becomes
// "Level N", anything else passes through unchanged.
func DisplayName(name string) string {
	if name == "test" {
		return "Test Level"
	}
	if m := levelNamePattern.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("Level %d", n)
	}
	return name
}

// FileName builds the output filename for a level: "000_test.txt" for the
// test level, "NNN_levelN.txt" (zero-padded level number) for numbered
// levels, and a position-indexed fallback for anything else.
func FileName(name string, index int) string {
	if name == "test" {
		return "000_test.txt"
	}
	if m := levelNamePattern.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%03d_level%d.txt", n, n)
	}
	return fmt.Sprintf("%03d_%s.txt", index, name)
}
