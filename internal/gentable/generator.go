package gentable

import (
	"fmt"

	"github.com/instabridge/zonelooker/internal/zltable"
)

// CodeOf maps a raster class index to its ISO 3166-1 alpha-2 code. The
// generator never invents codes: the mapping is supplied by the caller
// (e.g. parsed from the source dataset's attribute table).
type CodeOf func(class uint16) string

// Options configures a Build run.
type Options struct {
	DegPixels int32
	CodeOf    CodeOf
	Progress  Progress // optional; nil disables progress reporting
}

// Build classifies src bottom-up into a zltable.Table, per SPEC_FULL.md
// §6.2: level 0 (8x8 px) tiles are classified directly from the raster;
// coarser levels absorb their four children into a single Uniform entry
// whenever all four agree, mirroring the teacher's downsampleTile
// "all-children-uniform" fast path generalized from pixel color equality
// to country-code equality. A region only ever gets ONE tile entry, at the
// coarsest level it is uniform at — never a duplicate at a finer level —
// which is what lets the pyramid walker trust the first level it matches.
func Build(src ClassificationSource, opts Options) (*zltable.Table, error) {
	if opts.DegPixels <= 0 {
		return nil, fmt.Errorf("gentable: DegPixels must be positive, got %d", opts.DegPixels)
	}
	if opts.CodeOf == nil {
		return nil, fmt.Errorf("gentable: CodeOf is required")
	}

	g := &generation{
		src:    src,
		codeOf: opts.CodeOf,
		b:      zltable.NewBuilder(opts.DegPixels),
		prog:   opts.Progress,
	}
	g.pal = newPalette(g.b)

	g.buildLevel0Grid()

	tx5, ty5 := g.tilesAtLevel(zltable.MaxLevel)
	total := int64(tx5 * ty5)
	if g.prog != nil {
		g.prog.Start("classifying", total)
		defer g.prog.Finish()
	}

	for ty := 0; ty < ty5; ty++ {
		for tx := 0; tx < tx5; tx++ {
			g.emit(zltable.MaxLevel, tx, ty)
			if g.prog != nil {
				g.prog.Increment()
			}
		}
	}

	return g.b.Build(), nil
}

// generation holds the mutable state of one Build run.
type generation struct {
	src    ClassificationSource
	codeOf CodeOf
	b      *zltable.Builder
	pal    *palette
	prog   Progress

	level0W, level0H int // tile grid dimensions (blocks of 8x8 px) at level 0
	level0           []blockResult
}

func (g *generation) buildLevel0Grid() {
	w, h := g.src.Width(), g.src.Height()
	g.level0W = (w + 7) / 8
	g.level0H = (h + 7) / 8
	g.level0 = make([]blockResult, g.level0W*g.level0H)

	for ty := 0; ty < g.level0H; ty++ {
		for tx := 0; tx < g.level0W; tx++ {
			g.level0[ty*g.level0W+tx] = classifyBlock(g.src, g.codeOf, g.pal, tx*8, ty*8)
		}
	}
}

// tilesAtLevel returns the number of tiles spanning the raster at level,
// rounding up so partial edge tiles are included.
func (g *generation) tilesAtLevel(level int) (tx, ty int) {
	tileSize := 1 << uint(level+3)
	tx = (g.src.Width() + tileSize - 1) / tileSize
	ty = (g.src.Height() + tileSize - 1) / tileSize
	return tx, ty
}

// result computes the classification of tile (tx, ty) at level, defined
// recursively from its four level-1-finer children; level 0 reads directly
// from the precomputed grid. Out-of-grid children (at the raster's ragged
// edge) are treated as ocean, the same convention the teacher's
// downsampleTile uses for a nil child tile.
func (g *generation) result(level, tx, ty int) blockResult {
	if level == 0 {
		if tx < 0 || ty < 0 || tx >= g.level0W || ty >= g.level0H {
			return blockResult{uniform: true, ocean: true}
		}
		return g.level0[ty*g.level0W+tx]
	}

	childTX, childTY := g.tilesAtLevel(level - 1)
	child := func(dx, dy int) blockResult {
		ctx, cty := 2*tx+dx, 2*ty+dy
		if ctx >= childTX || cty >= childTY {
			return blockResult{uniform: true, ocean: true}
		}
		return g.result(level-1, ctx, cty)
	}

	c00, c10, c01, c11 := child(0, 0), child(1, 0), child(0, 1), child(1, 1)

	if c00.uniform && c10.uniform && c01.uniform && c11.uniform {
		if c00.ocean && c10.ocean && c01.ocean && c11.ocean {
			return blockResult{uniform: true, ocean: true}
		}
		if !c00.ocean && c00.code == c10.code && c00.code == c01.code && c00.code == c11.code {
			return blockResult{uniform: true, code: c00.code}
		}
	}
	return blockResult{}
}

// emit writes a tile entry for (level, tx, ty) if this tile resolves to a
// single answer, otherwise recurses into its four children. This is the
// top-down mirror of result's bottom-up classification: result decides
// HOW coarse an area can be; emit decides WHERE, exactly once, to record
// that decision as a tile entry.
func (g *generation) emit(level, tx, ty int) {
	r := g.result(level, tx, ty)

	switch {
	case r.ocean:
		return // sparse: absence of any entry already means ocean

	case r.uniform:
		leaf := g.pal.uniformLeaf(r.code)
		g.b.AddTile(level, uint32(tx), uint32(ty), leaf)

	case level == 0:
		g.b.AddTile(level, uint32(tx), uint32(ty), r.leaf)

	default:
		childTX, childTY := g.tilesAtLevel(level - 1)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				ctx, cty := 2*tx+dx, 2*ty+dy
				if ctx >= childTX || cty >= childTY {
					continue
				}
				g.emit(level-1, ctx, cty)
			}
		}
	}
}
