// Command zonetablegen builds a compiled-in zltable.Table from a classified
// world raster, offline, ahead of time. It is the generator collaborator
// described in SPEC_FULL.md §6.2: the library and its Lookup hot path never
// run this code, they only load what it produces.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/instabridge/zonelooker/internal/gentable"
)

func main() {
	var (
		input       string
		codesPath   string
		degPixels   int
		outBin      string
		outGo       string
		packageName string
		loaderName  string
		synthetic   bool
		verbose     bool
		cpuProfile  string
		memProfile  string
	)

	flag.StringVar(&input, "input", "", "Classification raster (Cloud-Optimized GeoTIFF); each pixel's class index is R<<8 | G, 0xFFFF meaning ocean")
	flag.StringVar(&codesPath, "codes", "", "CSV file mapping class index to ISO 3166-1 alpha-2 code, one \"index,CODE\" per line")
	flag.IntVar(&degPixels, "deg-pixels", 12, "Pixels per degree of the source raster")
	flag.StringVar(&outBin, "out-bin", "table.bin", "Output path for the binary table")
	flag.StringVar(&outGo, "out-go", "", "Output path for a Go source file embedding -out-bin (skipped if empty)")
	flag.StringVar(&packageName, "package", "countries", "Package name for -out-go")
	flag.StringVar(&loaderName, "loader-func", "loadGenerated", "Loader function name emitted in -out-go")
	flag.BoolVar(&synthetic, "synthetic", false, "Build a small built-in demo raster instead of reading -input")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.StringVar(&memProfile, "memprofile", "", "Write memory profile to file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: zonetablegen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Build a zltable.Table from a classified world raster.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !synthetic && input == "" {
		fmt.Fprintln(os.Stderr, "zonetablegen: one of -input or -synthetic is required")
		flag.Usage()
		os.Exit(1)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatalf("Creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}
	if memProfile != "" {
		defer func() {
			f, err := os.Create(memProfile)
			if err != nil {
				log.Fatalf("Creating memory profile: %v", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatalf("Writing memory profile: %v", err)
			}
		}()
	}

	var src gentable.ClassificationSource
	var codeOf gentable.CodeOf
	var err error

	if synthetic {
		if verbose {
			log.Printf("Building synthetic demo raster at %d px/deg", degPixels)
		}
		src, codeOf = demoRaster(degPixels)
	} else {
		src, err = gentable.OpenCOG(input)
		if err != nil {
			log.Fatalf("Opening input raster: %v", err)
		}
		if codesPath == "" {
			log.Fatal("-codes is required with -input")
		}
		codeOf, err = loadCodeTable(codesPath)
		if err != nil {
			log.Fatalf("Loading code table: %v", err)
		}
	}

	if verbose {
		log.Printf("Raster: %dx%d px", src.Width(), src.Height())
	}

	var prog gentable.Progress = gentable.NilProgress{}
	if verbose {
		prog = &gentable.BarProgress{}
	}

	start := time.Now()
	tbl, err := gentable.Build(src, gentable.Options{
		DegPixels: int32(degPixels),
		CodeOf:    codeOf,
		Progress:  prog,
	})
	if err != nil {
		log.Fatalf("Building table: %v", err)
	}
	if verbose {
		log.Printf("Built table in %v", time.Since(start).Round(time.Millisecond))
	}

	if err := gentable.WriteBinary(tbl, outBin); err != nil {
		log.Fatalf("Writing binary table: %v", err)
	}
	fi, _ := os.Stat(outBin)
	fmt.Printf("Wrote %s (%s)\n", outBin, humanSize(fi.Size()))

	if outGo != "" {
		embedName := filepath.Base(outBin)
		if filepath.Dir(outGo) != filepath.Dir(outBin) {
			log.Fatalf("-out-go and -out-bin must be in the same directory for go:embed to find %s", embedName)
		}
		if err := gentable.WriteEmbedSource(outGo, packageName, embedName, loaderName); err != nil {
			log.Fatalf("Writing Go source: %v", err)
		}
		fmt.Printf("Wrote %s (package %s, func %s)\n", outGo, packageName, loaderName)
	}
}

// loadCodeTable parses "index,CODE" lines into a gentable.CodeOf function.
func loadCodeTable(path string) (gentable.CodeOf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	codes := make(map[uint16]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %q (want \"index,CODE\")", line)
		}
		idx, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("malformed class index in %q: %w", line, err)
		}
		codes[uint16(idx)] = strings.ToUpper(strings.TrimSpace(parts[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return func(class uint16) string {
		if code, ok := codes[class]; ok {
			return code
		}
		return "??"
	}, nil
}

func humanSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
