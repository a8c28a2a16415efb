// Package gentable is the offline table generator: it builds a compiled-in
// zltable.Table from a classified world raster (spec.md §1's "out of
// scope" collaborator, still shipped as an in-repo command,
// cmd/zonetablegen, per SPEC_FULL.md §6.2).
//
// Adapted from the teacher's raster -> tile pyramid pipeline
// (internal/tile/{generator,downsample}.go) and its COG raster reader
// (internal/cog), generalized from "resample an RGBA image into web map
// tiles" to "classify an 8x8 pixel block into a Uniform/Bitmap/Pixmap
// leaf".
package gentable

import (
	"fmt"

	"github.com/instabridge/zonelooker/internal/cog"
)

// ClassificationSource is a classified raster: ClassAt(x, y) returns the
// 16-bit country-index for a pixel, with zltable.OceanIndex meaning ocean.
// Sources are read-only and safe for concurrent reads.
type ClassificationSource interface {
	Width() int
	Height() int
	ClassAt(x, y int) uint16
}

// cogSource decodes a country-index raster packed into a COG's red/green
// channels: classIndex = uint16(R)<<8 | uint16(G). This keeps the on-disk
// format a plain 8-bit-per-channel GeoTIFF (broadly toolable) while still
// carrying the full 16-bit index space the leaf format needs, including the
// 0xFFFF ocean sentinel.
type cogSource struct {
	r *cog.Reader
}

// OpenCOG opens a classification raster stored as a Cloud-Optimized GeoTIFF.
func OpenCOG(path string) (ClassificationSource, error) {
	r, err := cog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening classification raster %s: %w", path, err)
	}
	return &cogSource{r: r}, nil
}

func (c *cogSource) Width() int  { return c.r.Width() }
func (c *cogSource) Height() int { return c.r.Height() }

func (c *cogSource) ClassAt(x, y int) uint16 {
	red, green, _, _, err := c.r.ReadPixelRGBA(x, y)
	if err != nil {
		return oceanIndex
	}
	return uint16(red)<<8 | uint16(green)
}

// MemorySource is an in-memory classification raster, used by tests and by
// callers that already have a classified grid (e.g. converted from a
// simpler format than COG) rather than a GeoTIFF file on disk.
type MemorySource struct {
	W, H    int
	Classes []uint16 // row-major, len == W*H
}

func (m *MemorySource) Width() int  { return m.W }
func (m *MemorySource) Height() int { return m.H }

func (m *MemorySource) ClassAt(x, y int) uint16 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return oceanIndex
	}
	return m.Classes[y*m.W+x]
}

const oceanIndex = 0xFFFF
