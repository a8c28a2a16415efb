package gentable

import (
	"testing"

	"github.com/instabridge/zonelooker/zonelookup"
)

func codeOf(class uint16) string {
	switch class {
	case 1:
		return "DE"
	case 2:
		return "FR"
	case 3:
		return "JP"
	default:
		return "??"
	}
}

// fillRect sets classes[y][x] = class for x in [x0,x1), y in [y0,y1).
func fillRect(m *MemorySource, x0, y0, x1, y1 int, class uint16) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Classes[y*m.W+x] = class
		}
	}
}

func newOceanRaster(w, h int) *MemorySource {
	m := &MemorySource{W: w, H: h, Classes: make([]uint16, w*h)}
	for i := range m.Classes {
		m.Classes[i] = oceanIndex
	}
	return m
}

// TestBuild_PromotesLargeUniformRegion builds a country spanning many
// level-0 blocks, large enough for the bottom-up merge to promote parts of
// it past level 0, and checks that lookups inside it answer the country and
// lookups far outside it answer ocean.
func TestBuild_PromotesLargeUniformRegion(t *testing.T) {
	const w, h = 360, 180
	src := newOceanRaster(w, h)
	// A large contiguous DE block, big enough to promote past level 0.
	fillRect(src, 40, 40, 80, 80, 1)

	tbl, err := Build(src, Options{DegPixels: 1, CodeOf: codeOf})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	code, ok := zonelookup.Lookup(tbl, 90.0-60.0, -180.0+60.0) // roughly inside the DE block
	if !ok || code != "DE" {
		t.Errorf("inside promoted region: Lookup = (%q, %v), want (DE, true)", code, ok)
	}

	code, ok = zonelookup.Lookup(tbl, 0, 0) // ocean, far from the block
	if ok {
		t.Errorf("ocean region: Lookup = (%q, true), want not ok", code)
	}
}

// TestBuild_BitmapBoundary verifies an 8x8 block split between exactly two
// countries produces a Bitmap leaf whose mask correctly distinguishes them.
func TestBuild_BitmapBoundary(t *testing.T) {
	const w, h = 360, 180
	src := newOceanRaster(w, h)
	fillRect(src, 104, 104, 108, 112, 1) // DE: left half of one 8x8 block (x 104-112, y 104-112)
	fillRect(src, 108, 104, 112, 112, 2) // FR: right half

	tbl, err := Build(src, Options{DegPixels: 1, CodeOf: codeOf})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	xLeft, yRow := 105, 106
	latLeft, lonLeft := pixelToLatLon(xLeft, yRow, 1)
	code, ok := zonelookup.Lookup(tbl, latLeft, lonLeft)
	if !ok || code != "DE" {
		t.Errorf("left half: Lookup = (%q, %v), want (DE, true)", code, ok)
	}

	xRight := 109
	latRight, lonRight := pixelToLatLon(xRight, yRow, 1)
	code, ok = zonelookup.Lookup(tbl, latRight, lonRight)
	if !ok || code != "FR" {
		t.Errorf("right half: Lookup = (%q, %v), want (FR, true)", code, ok)
	}
}

// TestBuild_PixmapThreeWay verifies a block with three distinct classes
// (two countries plus ocean) falls through to a Pixmap leaf and resolves
// each cell independently.
func TestBuild_PixmapThreeWay(t *testing.T) {
	const w, h = 360, 180
	src := newOceanRaster(w, h)
	fillRect(src, 200, 50, 201, 51, 1) // one DE pixel
	fillRect(src, 201, 50, 202, 51, 2) // one FR pixel, rest of the block stays ocean

	tbl, err := Build(src, Options{DegPixels: 1, CodeOf: codeOf})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	latDE, lonDE := pixelToLatLon(200, 50, 1)
	code, ok := zonelookup.Lookup(tbl, latDE, lonDE)
	if !ok || code != "DE" {
		t.Errorf("pixmap DE cell: Lookup = (%q, %v), want (DE, true)", code, ok)
	}

	latOcean, lonOcean := pixelToLatLon(203, 50, 1)
	code, ok = zonelookup.Lookup(tbl, latOcean, lonOcean)
	if ok {
		t.Errorf("pixmap ocean cell: Lookup = (%q, true), want not ok", code)
	}
}

// TestBuild_RejectsBadOptions guards the Options contract: a non-positive
// DegPixels and a nil CodeOf are both rejected.
func TestBuild_RejectsBadOptions(t *testing.T) {
	src := newOceanRaster(8, 8)

	if _, err := Build(src, Options{DegPixels: 0, CodeOf: codeOf}); err == nil {
		t.Error("Build with DegPixels=0: want error, got nil")
	}
	if _, err := Build(src, Options{DegPixels: 1}); err == nil {
		t.Error("Build with nil CodeOf: want error, got nil")
	}
}

// pixelToLatLon inverts zltable.MapLatLon's formula for test fixture
// construction: given a pixel (x, y) at resolution d, returns a lat/lon
// comfortably inside that pixel's cell.
func pixelToLatLon(x, y int, d int32) (lat, lon float64) {
	lon = float64(x)/float64(d) - 180 + 0.5/float64(d)
	lat = 90 - (float64(y)/float64(d) + 0.5/float64(d))
	return lat, lon
}
