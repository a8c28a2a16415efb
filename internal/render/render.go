package render

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/instabridge/zonelooker/zonelookup"
)

// Options configures a Render call.
type Options struct {
	Width, Height int      // output raster size in pixels, covering the full globe
	Palette       *Palette // nil uses NewPalette(nil) (generated colors + default ocean)
	Concurrency   int      // 0 = runtime.NumCPU()
}

// Render rasterizes tbl into an RGBA image of opts.Width x opts.Height,
// calling zonelookup.Lookup once per pixel. Rows are split across workers
// the way the teacher's tile.Generate divides zoom-level tiles across a
// worker pool, since Lookup is safe for concurrent, lock-free use.
func Render(tbl *zonelookup.Table, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: width and height must be positive, got %dx%d", opts.Width, opts.Height)
	}
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette(nil)
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(tbl, img, y, opts.Width, opts.Height, palette)
			}
		}()
	}
	for y := 0; y < opts.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img, nil
}

func renderRow(tbl *zonelookup.Table, img *image.RGBA, y, width, height int, palette *Palette) {
	lat := 90 - (float64(y)+0.5)*180/float64(height)
	for x := 0; x < width; x++ {
		lon := (float64(x)+0.5)*360/float64(width) - 180
		code, ok := zonelookup.Lookup(tbl, lat, lon)
		c := palette.Color(code, ok)
		img.SetRGBA(x, y, c)
	}
}
