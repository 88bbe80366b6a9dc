// Package container extracts raw level byte arrays from their source
// container: a C source fragment (levels.txt) holding one PROGMEM uint8_t
// array per level.
package container

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/vovakirdan/lrconv/internal/level"
)

// arrayPattern matches one named C byte array:
//
//	const uint8_t PROGMEM level1[] = { 0x01, 0x02, ... };
var arrayPattern = regexp.MustCompile(`const\s+uint8_t\s+PROGMEM\s+(\w+)\[\]\s*=\s*\{([^}]+)\};`)

// hexPattern matches one hex byte literal inside an array body.
var hexPattern = regexp.MustCompile(`0[xX]([0-9A-Fa-f]{1,2})`)

// Extract scans src for level arrays and returns them in source order.
// Returns an error only when the container holds no arrays at all;
// malformed individual levels surface later as per-level decode failures.
func Extract(src []byte) ([]level.RawLevel, error) {
	matches := arrayPattern.FindAllSubmatch(src, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("container: no level arrays found")
	}

	levels := make([]level.RawLevel, 0, len(matches))
	for _, m := range matches {
		name := string(m[1])
		body := m[2]

		var data []byte
		for _, h := range hexPattern.FindAllSubmatch(body, -1) {
			v, err := strconv.ParseUint(string(h[1]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("container: bad byte in %s: %w", name, err)
			}
			data = append(data, byte(v))
		}
		levels = append(levels, level.RawLevel{Name: name, Data: data})
	}
	return levels, nil
}

// ExtractFile reads and extracts a container file from disk.
func ExtractFile(path string) ([]level.RawLevel, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("container: reading %s: %w", path, err)
	}
	return Extract(src)
}
