package zltable

import "sort"

// searchTileKey does a binary search for key in the level's sorted tile
// index, returning the leaf index and true on an exact match. Comparison is
// unsigned 32-bit, matching the canonical sort order of TileKey.
func (z *zoomLevel) searchTileKey(key TileKey) (uint16, bool) {
	entries := z.entries
	i := sort.Search(len(entries), func(i int) bool {
		return uint32(entries[i].key) >= uint32(key)
	})
	if i < len(entries) && entries[i].key == key {
		return entries[i].leafIndex, true
	}
	return 0, false
}
