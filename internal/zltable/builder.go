package zltable

import (
	"fmt"
	"sort"
)

// Builder assembles a Table programmatically. It stands in for the literal
// generated initializer the source's generator would otherwise emit: a Go
// struct literal of this size would be costly to compile, so the packed
// data is instead built once, validated, and frozen into plain slices (per
// spec.md §9 "Embedded data" / "Static global table" guidance).
//
// A Builder is not safe for concurrent use; build the table once (typically
// from a package init or a sync.Once-guarded constructor) and share the
// resulting *Table afterward.
type Builder struct {
	degPixels int32
	leaves    []Leaf
	entries   [MaxLevel + 1][]tileEntry
}

// NewBuilder starts a Table build for the given pixels-per-degree resolution.
func NewBuilder(degPixels int32) *Builder {
	return &Builder{degPixels: degPixels}
}

// AddLeaf appends a leaf and returns its index for use in AddTile or as a
// sub-leaf reference from a Bitmap/Pixmap leaf.
func (b *Builder) AddLeaf(l Leaf) uint16 {
	idx := len(b.leaves)
	if idx > 0xFFFF {
		panic("zltable: too many leaves for a uint16 index")
	}
	b.leaves = append(b.leaves, l)
	return uint16(idx)
}

// AddTile registers a tile entry at the given level and tile coordinate,
// pointing at leafIndex.
func (b *Builder) AddTile(level int, tileX, tileY uint32, leafIndex uint16) {
	if level < 0 || level > MaxLevel {
		panic(fmt.Sprintf("zltable: level %d out of range [0,%d]", level, MaxLevel))
	}
	key := packTileKey(level, tileX, tileY)
	b.entries[level] = append(b.entries[level], tileEntry{key: key, leafIndex: leafIndex})
}

// Build sorts each level's tile index and validates the invariants from
// spec.md §3 (sortedness, level-bit consistency, leaf-index bounds). It
// panics on violation: a malformed build is a generator bug, not a runtime
// condition the library needs to tolerate (spec.md §7 item 3 only concerns
// the already-built, compiled-in table).
func (b *Builder) Build() *Table {
	t := &Table{
		degPixels: b.degPixels,
		leaves:    b.leaves,
	}

	for level, entries := range b.entries {
		sort.Slice(entries, func(i, j int) bool {
			return uint32(entries[i].key) < uint32(entries[j].key)
		})
		for i, e := range entries {
			if e.key.level() != level {
				panic(fmt.Sprintf("zltable: tile key %08x at index %d has wrong level bits for level %d", uint32(e.key), i, level))
			}
			if i > 0 && uint32(entries[i-1].key) >= uint32(e.key) {
				panic(fmt.Sprintf("zltable: level %d tile keys not strictly increasing at index %d", level, i))
			}
			if int(e.leafIndex) >= len(b.leaves) {
				panic(fmt.Sprintf("zltable: level %d entry %d references out-of-range leaf %d", level, i, e.leafIndex))
			}
		}
		t.zoomLevels[level] = zoomLevel{entries: entries}
	}

	for i, l := range b.leaves {
		switch l.Kind {
		case KindUniform, KindBitmap, KindPixmap:
		default:
			panic(fmt.Sprintf("zltable: leaf %d has unknown kind %d", i, l.Kind))
		}
	}

	return t
}
