// Command zonerender draws a zonelookup.Table as a raster image, for visual
// diagnostics. It is a pure consumer of the public zonelookup API and the
// PMTiles writer: a bug here can never affect Lookup's behavior or
// performance (SPEC_FULL.md §6.3).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/instabridge/zonelooker/internal/encode"
	"github.com/instabridge/zonelooker/internal/render"
	"github.com/instabridge/zonelooker/zonelookup"
)

func main() {
	var (
		width      int
		height     int
		format     string
		quality    int
		zoom       int
		tileSize   int
		table      string
		verbose    bool
		outputPath string
	)

	flag.IntVar(&width, "width", 1440, "Output raster width in pixels")
	flag.IntVar(&height, "height", 720, "Output raster height in pixels")
	flag.StringVar(&format, "format", "png", "Output format: png, jpeg, webp, or pmtiles")
	flag.IntVar(&quality, "quality", 85, "JPEG/WebP quality 1-100 (format=jpeg/webp only)")
	flag.IntVar(&zoom, "zoom", 2, "Zoom level to record in the archive (format=pmtiles only)")
	flag.IntVar(&tileSize, "tile-size", 256, "Tile size in pixels (format=pmtiles only; width/height must be a multiple of it)")
	flag.StringVar(&table, "table", "countries", "Table name (currently ignored: one default table is built in)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: zonerender [flags] <output-file>\n\n")
		fmt.Fprintf(os.Stderr, "Render the built-in zone table as a raster image.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath = args[0]

	tbl := zonelookup.GetTable(table)

	start := time.Now()
	img, err := render.Render(tbl, render.Options{Width: width, Height: height})
	if err != nil {
		log.Fatalf("Rendering: %v", err)
	}
	if verbose {
		log.Printf("Rendered %dx%d in %v", width, height, time.Since(start).Round(time.Millisecond))
	}

	switch format {
	case "png", "jpeg", "webp":
		q := quality
		if format == "png" {
			q = 0
		}
		enc, err := encode.NewEncoder(format, q)
		if err != nil {
			log.Fatalf("Encoder: %v", err)
		}
		data, err := enc.Encode(img)
		if err != nil {
			log.Fatalf("Encoding %s: %v", format, err)
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			log.Fatalf("Writing %s: %v", outputPath, err)
		}

	case "pmtiles":
		enc, err := encode.NewEncoder("png", 0)
		if err != nil {
			log.Fatalf("Encoder: %v", err)
		}
		if err := render.ExportPMTiles(img, tileSize, zoom, enc, outputPath); err != nil {
			log.Fatalf("Exporting PMTiles: %v", err)
		}

	default:
		log.Fatalf("Unsupported format %q (supported: png, jpeg, webp, pmtiles)", format)
	}

	fi, _ := os.Stat(outputPath)
	fmt.Printf("Wrote %s (%d bytes)\n", outputPath, fi.Size())
}
