package zltable

import "math"

// MapLatLon maps a (lat, lon) in degrees to a clamped integer pixel (x, y)
// in the table's grid, per spec.md §4.1. y increases southward. Inputs are
// expected to be finite; NaN/±Inf are not validated here (contract:
// callers pre-validate, spec.md §4.1/§7 item 4).
func MapLatLon(t *Table, lat, lon float64) (x, y int) {
	d := float64(t.degPixels)

	maxX := int(360*t.degPixels) - 1
	maxY := int(180*t.degPixels) - 1

	x = int(math.Floor((lon + 180) * d))
	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}

	y = int(math.Floor((90 - lat) * d))
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}

	return x, y
}
