// Package render draws classified faces as images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/kozaktomas/cube-scanner/internal/facegrid"
	"golang.org/x/image/draw"
)

// borderWidth is the width of the black line drawn around every cell.
const borderWidth = 2

// Face draws a size*size image of the grid with each cell filled in its label's color.
func Face(grid facegrid.Grid, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	rects, err := facegrid.CellRects(size, size)
	if err != nil {
		return img
	}
	for i, r := range rects {
		inner := r.Inset(borderWidth)
		if inner.Empty() {
			inner = r
		}
		fill := &image.Uniform{C: grid[i].Label.Display()}
		draw.Draw(img, inner, fill, image.Point{}, draw.Src)
	}
	return img
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
