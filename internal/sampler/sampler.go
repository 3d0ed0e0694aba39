// Package sampler reduces a pixel region to one representative HSV color.
package sampler

import (
	"fmt"
	"sort"

	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/lucasb-eyer/go-colorful"
)

// FromRGB converts one 8-bit RGB pixel to HSV with S and V on the 0-255 scale.
//
// Hue is 0 for black and for grays, where it is undefined.
func FromRGB(r, g, b uint8) cube.HSV {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, v := c.Hsv()
	if h >= cube.HueMax {
		h -= cube.HueMax
	}
	return cube.HSV{H: h, S: s * cube.ChannelMax, V: v * cube.ChannelMax}
}

// Sample returns the per-channel median color of a region.
//
// Each channel is reduced on its own, so the result need not be the color of
// any single pixel. This keeps highlights, shadow edges and sticker gaps from
// pulling the estimate as long as they cover less than half the region.
func Sample(region cube.Region) (cube.HSV, error) {
	if region.Empty() {
		return cube.HSV{}, fmt.Errorf("sampling %dx%d region: %w", region.Width(), region.Height(), cube.ErrInvalidInput)
	}

	n := region.Width() * region.Height()
	hues := make([]float64, 0, n)
	sats := make([]float64, 0, n)
	vals := make([]float64, 0, n)
	for y := 0; y < region.Height(); y++ {
		for x := 0; x < region.Width(); x++ {
			c := FromRGB(region.At(x, y))
			hues = append(hues, c.H)
			sats = append(sats, c.S)
			vals = append(vals, c.V)
		}
	}

	return cube.HSV{
		H: median(hues),
		S: median(sats),
		V: median(vals),
	}, nil
}

// median sorts values in place and returns the element at index len/2.
// For an even count no averaging of the two middle elements takes place;
// an average of two hues on either side of the 0/360 seam is meaningless.
func median(values []float64) float64 {
	sort.Float64s(values)
	return values[len(values)/2]
}
