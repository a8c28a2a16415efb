// Package zonelookup is the public API of the country lookup engine: given
// a latitude/longitude, answer which ISO 3166-1 alpha-2 country contains
// it, or report ocean, against a precomputed read-only spatial index
// compiled into the binary (spec.md §1, §6).
//
// Lookup is synchronous, pure, allocation-free, and safe for concurrent use
// by multiple goroutines without coordination; the returned Table is
// process-wide immutable static data (spec.md §5).
package zonelookup

import (
	"github.com/instabridge/zonelooker/internal/countries"
	"github.com/instabridge/zonelooker/internal/zltable"
)

// Table is an opaque handle to a compiled-in spatial index. Callers must
// treat it as having static lifetime: it is never mutated and never freed.
type Table = zltable.Table

// GetTable returns a handle to an immutable table. The name parameter is
// reserved for future multi-table support (spec.md §4.5, §9 "Table
// naming") and is currently ignored: every name, including the empty
// string and any unrecognized name, returns the single built-in
// "countries" table. This is existing behavior, not an error condition.
func GetTable(name string) *Table {
	return countries.Table()
}

// DegPixels returns the table's pixels-per-degree resolution.
func DegPixels(t *Table) int32 {
	return t.DegPixels()
}

// Lookup answers which country contains (lat, lon), or reports ocean.
//
// ok is false for ocean/unclassified pixels (spec.md §7 item 1) and is
// also false for any malformed-table condition the resolver detects
// (spec.md §7 item 3) — the two are indistinguishable by design, matching
// the source's single null-or-code return type. NaN/±Inf inputs are
// outside the contract (spec.md §4.1, §7 item 4): callers must pre-validate.
func Lookup(t *Table, lat, lon float64) (code string, ok bool) {
	x, y := zltable.MapLatLon(t, lat, lon)
	return zltable.LookupPixel(t, x, y)
}
