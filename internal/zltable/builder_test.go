package zltable

import "testing"

func TestBuilder_SortsEntries(t *testing.T) {
	b := NewBuilder(12)
	l := b.AddLeaf(Leaf{Kind: KindUniform, Code: "AA"})
	b.AddTile(0, 5, 0, l)
	b.AddTile(0, 2, 0, l)
	b.AddTile(0, 3, 0, l)

	tbl := b.Build()
	entries := tbl.zoomLevels[0].entries
	for i := 1; i < len(entries); i++ {
		if uint32(entries[i-1].key) >= uint32(entries[i].key) {
			t.Fatalf("entries not strictly increasing at %d", i)
		}
	}
}

func TestBuilder_PanicsOnOutOfRangeLeafIndex(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Build did not panic on out-of-range leaf index")
		}
	}()
	b := NewBuilder(12)
	b.AddTile(0, 0, 0, 999)
	b.Build()
}

func TestBuilder_PanicsOnInvalidLevel(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("AddTile did not panic on invalid level")
		}
	}()
	b := NewBuilder(12)
	l := b.AddLeaf(Leaf{Kind: KindUniform, Code: "AA"})
	b.AddTile(6, 0, 0, l)
}

func TestBuilder_DegPixels(t *testing.T) {
	tbl := NewBuilder(12).Build()
	if tbl.DegPixels() != 12 {
		t.Errorf("DegPixels() = %d, want 12", tbl.DegPixels())
	}
}
