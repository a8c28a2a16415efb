package render

import (
	"fmt"
	"image"

	"github.com/instabridge/zonelooker/internal/cog"
	"github.com/instabridge/zonelooker/internal/encode"
	"github.com/instabridge/zonelooker/internal/pmtiles"
)

// ExportPMTiles slices a rendered globe image into a single-zoom-level
// PMTiles v3 archive, reusing the teacher's archive writer untouched: each
// tileSize x tileSize square of img becomes one PMTiles tile entry. img's
// dimensions must be an exact multiple of tileSize on both axes; zoom is
// recorded as both min and max zoom, since the renderer never produces a
// pyramid of levels the way the teacher's geotiff2pmtiles does.
func ExportPMTiles(img *image.RGBA, tileSize, zoom int, enc encode.Encoder, outPath string) error {
	bounds := img.Bounds()
	if bounds.Dx()%tileSize != 0 || bounds.Dy()%tileSize != 0 {
		return fmt.Errorf("render: image size %dx%d is not a multiple of tile size %d", bounds.Dx(), bounds.Dy(), tileSize)
	}
	tilesX := bounds.Dx() / tileSize
	tilesY := bounds.Dy() / tileSize

	w, err := pmtiles.NewWriter(outPath, pmtiles.WriterOptions{
		MinZoom: zoom,
		MaxZoom: zoom,
		Bounds: cog.Bounds{
			MinLon: -180, MaxLon: 180,
			MinLat: -90, MaxLat: 90,
		},
		TileFormat: enc.PMTileType(),
		TileSize:   tileSize,
	})
	if err != nil {
		return fmt.Errorf("render: creating pmtiles writer: %w", err)
	}

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			tile := img.SubImage(image.Rect(tx*tileSize, ty*tileSize, (tx+1)*tileSize, (ty+1)*tileSize))
			data, err := enc.Encode(tile)
			if err != nil {
				w.Abort()
				return fmt.Errorf("render: encoding tile (%d,%d): %w", tx, ty, err)
			}
			// PMTiles' y axis increases northward (TMS); our raster's y
			// increases southward, so flip here at write time.
			if err := w.WriteTile(zoom, tx, tilesY-1-ty, data); err != nil {
				w.Abort()
				return fmt.Errorf("render: writing tile (%d,%d): %w", tx, ty, err)
			}
		}
	}

	if err := w.Finalize(); err != nil {
		return fmt.Errorf("render: finalizing pmtiles archive: %w", err)
	}
	return nil
}
