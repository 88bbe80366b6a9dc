package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lrconv/internal/level"
)

// gridLevelBytes builds a minimal valid level: player, no entities, four
// zero respawn points, grid encoding, all-blank body.
func gridLevelBytes() []byte {
	data := []byte{1, 1, 0, 0}
	data = append(data, make([]byte, 8)...) // respawn points
	data = append(data, 2)                  // grid discriminator
	data = append(data, make([]byte, 224)...)
	return data
}

func TestDecodeBatchKeepsOrder(t *testing.T) {
	raws := make([]level.RawLevel, 20)
	for i := range raws {
		raws[i] = level.RawLevel{Name: "level" + string(rune('a'+i)), Data: gridLevelBytes()}
	}

	items := decodeBatch(raws, 4)

	if len(items) != len(raws) {
		t.Fatalf("expected %d items, got %d", len(raws), len(items))
	}
	for i, item := range items {
		if item.Raw.Name != raws[i].Name {
			t.Errorf("position %d: expected %q, got %q", i, raws[i].Name, item.Raw.Name)
		}
		if item.Err != nil {
			t.Errorf("%s: unexpected error: %v", item.Raw.Name, item.Err)
		}
	}
}

func TestDecodeBatchIsolatesFailures(t *testing.T) {
	raws := []level.RawLevel{
		{Name: "good1", Data: gridLevelBytes()},
		{Name: "bad", Data: []byte{0, 0, 0, 0, 0xFF}},
		{Name: "good2", Data: gridLevelBytes()},
	}

	items := decodeBatch(raws, 2)

	if items[0].Err != nil || items[2].Err != nil {
		t.Errorf("good levels must decode: %v, %v", items[0].Err, items[2].Err)
	}
	if !errors.Is(items[1].Err, level.ErrHeaderAmbiguous) {
		t.Errorf("expected ErrHeaderAmbiguous for bad level, got %v", items[1].Err)
	}

	decoded, ok, failed := reportBatch(items)
	if ok != 2 || failed != 1 {
		t.Errorf("expected 2 ok / 1 failed, got %d / %d", ok, failed)
	}
	if len(decoded) != 2 || decoded[0].Name != "good1" || decoded[1].Name != "good2" {
		t.Errorf("unexpected decoded set: %v", decoded)
	}
}

func TestDecodeBatchEmptyInput(t *testing.T) {
	items := decodeBatch(nil, 4)
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
