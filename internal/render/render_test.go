package render

import (
	"testing"

	"github.com/instabridge/zonelooker/internal/countries"
	"github.com/instabridge/zonelooker/zonelookup"
)

func TestRender_ProducesRightSizedImage(t *testing.T) {
	tbl := countries.Table()
	img, err := Render(tbl, Options{Width: 72, Height: 36})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 72 || b.Dy() != 36 {
		t.Errorf("image size = %dx%d, want 72x36", b.Dx(), b.Dy())
	}
}

func TestRender_RejectsBadSize(t *testing.T) {
	tbl := countries.Table()
	if _, err := Render(tbl, Options{Width: 0, Height: 10}); err == nil {
		t.Error("Render with Width=0: want error, got nil")
	}
}

func TestRender_OceanPixelGetsOceanColor(t *testing.T) {
	tbl := countries.Table()
	img, err := Render(tbl, Options{Width: 360, Height: 180})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Mid-Pacific: lon ~ -140, lat ~ 0 -> x ~ 40/360*360=40, y ~ 90.
	x := int((-140.0 + 180) / 360 * 360)
	y := int((90 - 0.0) / 180 * 180)
	got := img.RGBAAt(x, y)
	if got != DefaultOceanColor {
		t.Errorf("ocean pixel = %+v, want %+v", got, DefaultOceanColor)
	}
}

// TestRender_AgreesWithLookup is spec.md P7: a rendering of the table,
// compared pixel-by-pixel against direct Lookup calls, must agree exactly.
// Rendered at the table's native degPixels resolution so each pixel's
// center maps onto the same grid Lookup itself resolves against.
func TestRender_AgreesWithLookup(t *testing.T) {
	tbl := countries.Table()
	deg := int(zonelookup.DegPixels(tbl))
	width := 360 * deg
	height := 180 * deg

	palette := NewPalette(nil)
	img, err := Render(tbl, Options{Width: width, Height: height, Palette: palette})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	mismatches := 0
	for y := 0; y < height; y++ {
		lat := 90 - (float64(y)+0.5)*180/float64(height)
		for x := 0; x < width; x++ {
			lon := (float64(x)+0.5)*360/float64(width) - 180
			code, ok := zonelookup.Lookup(tbl, lat, lon)
			want := palette.Color(code, ok)
			got := img.RGBAAt(x, y)
			if got != want {
				mismatches++
				if mismatches <= 5 {
					t.Errorf("pixel (%d,%d) lat=%.4f lon=%.4f: rendered %+v, want %+v (code=%q ok=%v)",
						x, y, lat, lon, got, want, code, ok)
				}
			}
		}
	}
	if mismatches > 0 {
		t.Fatalf("%d/%d pixels disagree with direct Lookup", mismatches, width*height)
	}
}
