package gentable

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/instabridge/zonelooker/internal/zltable"
)

// palette deduplicates Uniform leaves by country code: every pixel
// classified as the same code shares one leaf index, the way the source's
// generator would intern repeated country-name strings.
type palette struct {
	b           *zltable.Builder
	leafForCode map[string]uint16
}

func newPalette(b *zltable.Builder) *palette {
	return &palette{b: b, leafForCode: make(map[string]uint16)}
}

func (p *palette) uniformLeaf(code string) uint16 {
	if idx, ok := p.leafForCode[code]; ok {
		return idx
	}
	idx := p.b.AddLeaf(zltable.Leaf{Kind: zltable.KindUniform, Code: code})
	p.leafForCode[code] = idx
	return idx
}

// blockResult is the classification outcome of one 8x8 pixel block.
type blockResult struct {
	uniform bool
	ocean   bool   // uniform && every pixel is ocean
	code    string // uniform && !ocean
	leaf    uint16 // !uniform: the Bitmap/Pixmap leaf already built for this block
}

// classifyBlock inspects an 8x8 block of src starting at (originX, originY)
// and decides its leaf encoding, per SPEC_FULL.md §6.2:
//
//   - exactly one class, ocean              -> uniform ocean (no leaf needed)
//   - exactly one class, a country          -> Uniform leaf
//   - exactly two classes, neither ocean    -> Bitmap leaf
//   - anything else (incl. ocean mixed in)  -> Pixmap leaf, ocean cells use
//     the OceanIndex sentinel (invariant 5: only Pixmap can terminate null)
func classifyBlock(src ClassificationSource, codeOf func(uint16) string, pal *palette, originX, originY int) blockResult {
	var classes [64]uint16
	distinct := make(map[uint16]bool, 3)
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			c := src.ClassAt(originX+dx, originY+dy)
			classes[dy*8+dx] = c
			distinct[c] = true
		}
	}

	if len(distinct) == 1 {
		c := classes[0]
		if c == oceanIndex {
			return blockResult{uniform: true, ocean: true}
		}
		return blockResult{uniform: true, code: codeOf(c)}
	}

	hasOcean := distinct[oceanIndex]
	if len(distinct) == 2 && !hasOcean {
		var codes []uint16
		for c := range distinct {
			codes = append(codes, c)
		}
		if codes[0] > codes[1] {
			codes[0], codes[1] = codes[1], codes[0]
		}
		idx0 := pal.uniformLeaf(codeOf(codes[0]))
		idx1 := pal.uniformLeaf(codeOf(codes[1]))

		bs := bitset.New(64)
		for i, c := range classes {
			if c == codes[1] {
				bs.Set(uint(i))
			}
		}
		mask := uint64(0)
		if words := bs.Bytes(); len(words) > 0 {
			mask = words[0]
		}

		leaf := pal.b.AddLeaf(zltable.Leaf{
			Kind:       zltable.KindBitmap,
			BitmapIdx:  [2]uint16{idx0, idx1},
			BitmapBits: mask,
		})
		return blockResult{leaf: leaf}
	}

	var pm [64]uint16
	for i, c := range classes {
		if c == oceanIndex {
			pm[i] = zltable.OceanIndex
		} else {
			pm[i] = pal.uniformLeaf(codeOf(c))
		}
	}
	leaf := pal.b.AddLeaf(zltable.Leaf{Kind: zltable.KindPixmap, Pixmap: pm})
	return blockResult{leaf: leaf}
}
