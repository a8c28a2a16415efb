package zltable

// LookupPixel converts a pixel coordinate into the coarsest matching tile
// and descends through finer levels per spec.md §4.4. Scanning
// coarse-to-fine (level 5 down to 0) is load-bearing: the generator emits
// at most one matching tile across all levels for a given pixel, so the
// first hit is authoritative — even when that hit's resolved answer is
// ocean. The loop must not be reversed.
func LookupPixel(t *Table, x, y int) (string, bool) {
	for level := MaxLevel; level >= 0; level-- {
		shift := tileSizeShift(level)
		tileX := uint32(x) >> shift
		tileY := uint32(y) >> shift
		key := packTileKey(level, tileX, tileY)

		leafIndex, ok := t.zoomLevels[level].searchTileKey(key)
		if !ok {
			continue
		}
		return resolveLeaf(t, leafIndex, x, y)
	}
	return "", false
}
