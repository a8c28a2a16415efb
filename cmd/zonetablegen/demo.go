package main

import "github.com/instabridge/zonelooker/internal/gentable"

// demoRaster builds a small synthetic classification raster exercising all
// three leaf kinds, for exercising the full generator pipeline (-synthetic)
// without a real classified dataset on hand.
func demoRaster(degPixels int) (gentable.ClassificationSource, gentable.CodeOf) {
	d := degPixels
	w, h := 360*d, 180*d

	m := &gentable.MemorySource{W: w, H: h, Classes: make([]uint16, w*h)}
	for i := range m.Classes {
		m.Classes[i] = 0xFFFF // ocean
	}

	px := func(lat, lon float64) (int, int) {
		x := int((lon + 180) * float64(d))
		y := int((90 - lat) * float64(d))
		return x, y
	}

	fillBlock := func(lat, lon float64, size int, class uint16) {
		x0, y0 := px(lat, lon)
		x0, y0 = x0-x0%size, y0-y0%size // align so the block covers whole coarser tiles
		for y := y0; y < y0+size && y < h; y++ {
			for x := x0; x < x0+size && x < w; x++ {
				m.Classes[y*w+x] = class
			}
		}
	}

	const block = 16 // several 8x8 tiles wide, so the demo also exercises promotion to coarser levels
	fillBlock(52.52, 13.405, block, 1)     // DE, Berlin
	fillBlock(35.6895, 139.6917, block, 2) // JP, Tokyo
	fillBlock(-34.6037, -58.3816, block, 3) // AR, Buenos Aires

	// A Bitmap-eligible block: exactly two non-ocean classes sharing one
	// 8x8 tile.
	bx, by := px(48.0, 7.0) // near the Rhine, DE/FR-style border
	bx, by = bx-bx%8, by-by%8 // align to a single level-0 tile
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			class := uint16(1)
			if dx >= 4 {
				class = 4
			}
			m.Classes[(by+dy)*w+(bx+dx)] = class
		}
	}

	codeOf := func(class uint16) string {
		switch class {
		case 1:
			return "DE"
		case 2:
			return "JP"
		case 3:
			return "AR"
		case 4:
			return "FR"
		default:
			return "??"
		}
	}

	return m, codeOf
}
