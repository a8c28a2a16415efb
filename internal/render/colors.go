// Package render draws a zonelookup.Table as a raster image, for visual
// diagnostics (SPEC_FULL.md §6.3). It never runs on the Lookup hot path:
// it calls the public zonelookup API exactly like any other caller would.
package render

import (
	"fmt"
	"image/color"
	"sort"
)

// colorEntry maps one country code to a display color.
type colorEntry struct {
	code string
	rgb  color.RGBA
}

// Palette is a sorted country-code-to-color lookup, searched by binary
// search the way internal/pmtiles searches its tile directory.
type Palette struct {
	entries []colorEntry
	ocean   color.RGBA
	unknown color.RGBA
}

// DefaultOceanColor and DefaultUnknownColor are the ocean and unknown colors
// every NewPalette starts with. Color returns the ocean color; it never
// returns the unknown color, since a code without an assigned color gets a
// generated one.
var (
	DefaultOceanColor   = color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}
	DefaultUnknownColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// NewPalette builds a Palette from a code->color map, deterministically
// generating a color for any code not explicitly given one.
func NewPalette(colors map[string]color.RGBA) *Palette {
	p := &Palette{ocean: DefaultOceanColor, unknown: DefaultUnknownColor}
	for code, rgb := range colors {
		p.entries = append(p.entries, colorEntry{code: code, rgb: rgb})
	}
	sort.Slice(p.entries, func(i, j int) bool { return p.entries[i].code < p.entries[j].code })
	return p
}

// Color returns the display color for a Lookup result: ok=false is ocean;
// ok=true gives the code's assigned color, or a color generated from the
// code when the palette has none for it.
func (p *Palette) Color(code string, ok bool) color.RGBA {
	if !ok {
		return p.ocean
	}
	i := sort.Search(len(p.entries), func(i int) bool { return p.entries[i].code >= code })
	if i < len(p.entries) && p.entries[i].code == code {
		return p.entries[i].rgb
	}
	return generateColor(code)
}

// generateColor derives a stable, reasonably distinct color from a country
// code so every code renders consistently across runs without requiring an
// explicit palette entry.
func generateColor(code string) color.RGBA {
	h := fnv32(code)
	r := uint8(64 + (h>>0)%192)
	g := uint8(64 + (h>>8)%192)
	b := uint8(64 + (h>>16)%192)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fnv32(s string) uint32 {
	const prime = 16777619
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return h
}

// String renders a palette entry for debug output.
func (e colorEntry) String() string {
	return fmt.Sprintf("%s=#%02x%02x%02x", e.code, e.rgb.R, e.rgb.G, e.rgb.B)
}
