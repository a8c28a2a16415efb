package zltable

import "testing"

func TestMapLatLon_Basic(t *testing.T) {
	tbl := &Table{degPixels: 12}

	tests := []struct {
		name     string
		lat, lon float64
		wantX    int
		wantY    int
	}{
		{"origin", 0, 0, 2160, 1080},
		{"berlin", 52.5200, 13.4050, 2320, 449}, // floor(193.405*12), floor(37.48*12)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := MapLatLon(tbl, tt.lat, tt.lon)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("MapLatLon(%v, %v) = (%d, %d), want (%d, %d)", tt.lat, tt.lon, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMapLatLon_ClampsPoles(t *testing.T) {
	tbl := &Table{degPixels: 12}

	_, yNorth := MapLatLon(tbl, 90, 0)
	if yNorth != 0 {
		t.Errorf("north pole y = %d, want 0", yNorth)
	}

	_, ySouth := MapLatLon(tbl, -90, 0)
	wantSouth := int(180*tbl.degPixels) - 1
	if ySouth != wantSouth {
		t.Errorf("south pole y = %d, want %d", ySouth, wantSouth)
	}
}

func TestMapLatLon_ClampsAntimeridian(t *testing.T) {
	tbl := &Table{degPixels: 12}

	xEast, _ := MapLatLon(tbl, 0, 180)
	wantEast := int(360*tbl.degPixels) - 1
	if xEast != wantEast {
		t.Errorf("x at lon=180 = %d, want %d", xEast, wantEast)
	}

	xWest, _ := MapLatLon(tbl, 0, -180)
	if xWest != 0 {
		t.Errorf("x at lon=-180 = %d, want 0", xWest)
	}
}

func TestMapLatLon_StableNearPole(t *testing.T) {
	tbl := &Table{degPixels: 12}

	_, y1 := MapLatLon(tbl, 90, 10)
	_, y2 := MapLatLon(tbl, 90-1e-9, 10)
	if y1 != y2 {
		t.Errorf("clamping not stable across epsilon perturbation: y1=%d y2=%d", y1, y2)
	}
}
