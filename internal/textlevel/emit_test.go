package textlevel

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lrconv/internal/level"
)

// testLevel builds a decoded level by hand: a brick floor, some gold, a
// player, and one hidden ladder under gold.
func testLevel(name string) *level.DecodedLevel {
	g := level.NewGrid()
	for x := 0; x < level.Width; x++ {
		g.SetTile(level.P(x, 15), level.TileBrick)
	}
	g.SetTile(level.P(4, 14), level.TileGold)
	g.SetMarker(level.P(1, 14), level.MarkerPlayer)
	g.SetMarker(level.P(10, 14), level.MarkerExitLadder)

	return &level.DecodedLevel{
		Name:     name,
		Grid:     g,
		Overlaps: []level.Point{level.P(4, 14)},
	}
}

func TestEmitSingleLevel(t *testing.T) {
	out := Emit(testLevel("level3"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "# Level 3" {
		t.Errorf("expected '# Level 3' header, got %q", lines[0])
	}
	if lines[1] != "@ 4,14" {
		t.Errorf("expected overlap metadata line, got %q", lines[1])
	}
	if len(lines) != 2+level.Height {
		t.Fatalf("expected %d lines, got %d", 2+level.Height, len(lines))
	}

	bottom := lines[len(lines)-1]
	if bottom != strings.Repeat("#", level.Width) {
		t.Errorf("expected brick floor, got %q", bottom)
	}
	mid := lines[len(lines)-2]
	if mid[1] != 'P' || mid[4] != '$' || mid[10] != '~' {
		t.Errorf("unexpected entity row: %q", mid)
	}
}

func TestEmitOmitsEmptyOverlapLine(t *testing.T) {
	d := testLevel("test")
	d.Overlaps = nil

	out := Emit(d)
	if strings.Contains(out, "@ ") {
		t.Errorf("empty overlap list must not emit a metadata line:\n%s", out)
	}
	if !strings.HasPrefix(out, "# Test Level\n") {
		t.Errorf("expected '# Test Level' header, got %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestWritePackAndParseBack(t *testing.T) {
	meta := PackMeta{
		Name:        "Classic Set",
		Author:      "vova",
		Description: "Converted from the handheld build",
	}
	levels := []*level.DecodedLevel{testLevel("level1"), testLevel("level2")}

	var sb strings.Builder
	if err := WritePack(&sb, meta, levels); err != nil {
		t.Fatalf("WritePack() failed: %v", err)
	}

	gotMeta, defs, err := ParsePack([]byte(sb.String()))
	if err != nil {
		t.Fatalf("ParsePack() failed: %v", err)
	}
	if gotMeta != meta {
		t.Errorf("metadata round-trip: expected %+v, got %+v", meta, gotMeta)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(defs))
	}
	if defs[0].Name != "Level 1" || defs[1].Name != "Level 2" {
		t.Errorf("unexpected level names: %q, %q", defs[0].Name, defs[1].Name)
	}
	if len(defs[0].HiddenLadders) != 1 || defs[0].HiddenLadders[0] != level.P(4, 14) {
		t.Errorf("expected hidden ladder (4,14), got %v", defs[0].HiddenLadders)
	}
	for i, def := range defs {
		if err := Validate(def); err != nil {
			t.Errorf("level %d fails validation: %v", i, err)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test", "Test Level"},
		{"level1", "Level 1"},
		{"level042", "Level 42"},
		// Suffixed names still match on the leading number.
		{"level3b", "Level 3"},
		{"bonus_cave", "bonus_cave"},
		{"sublevel1", "sublevel1"},
	}
	for _, tc := range tests {
		if got := DisplayName(tc.in); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"test", 0, "000_test.txt"},
		{"level7", 3, "007_level7.txt"},
		{"level123", 9, "123_level123.txt"},
		{"level3b", 5, "003_level3.txt"},
		{"bonus", 12, "012_bonus.txt"},
	}
	for _, tc := range tests {
		if got := FileName(tc.name, tc.index); got != tc.want {
			t.Errorf("FileName(%q, %d) = %q, want %q", tc.name, tc.index, got, tc.want)
		}
	}
}
