// Command zonelookup is a thin CLI over the zonelookup library, for manual
// spot-checks and scripting (e.g. `zonelookup -lat 52.52 -lon 13.40`).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/instabridge/zonelooker/zonelookup"
)

func main() {
	var (
		lat   float64
		lon   float64
		table string
	)

	flag.Float64Var(&lat, "lat", 0, "Latitude in degrees, -90 to 90")
	flag.Float64Var(&lon, "lon", 0, "Longitude in degrees, -180 to 180")
	flag.StringVar(&table, "table", "countries", "Table name (currently ignored: one default table is built in)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: zonelookup -lat <deg> -lon <deg>\n\n")
		fmt.Fprintf(os.Stderr, "Print the ISO 3166-1 alpha-2 country code at a coordinate, or \"ocean\".\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	tbl := zonelookup.GetTable(table)
	code, ok := zonelookup.Lookup(tbl, lat, lon)
	if !ok {
		fmt.Println("ocean")
		return
	}
	fmt.Println(code)
}
