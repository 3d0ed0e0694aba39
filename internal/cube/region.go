package cube

import (
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the number of samples per pixel in a Region: R, G, B.
const BytesPerPixel = 3

// Region is a read-only view onto 8-bit RGB samples.
//
// Pixels are stored row-major with three bytes per pixel in R, G, B order.
// Stride is the byte distance between vertically adjacent pixels, so
// sub-regions share the parent's buffer without copying.
type Region struct {
	pix    []uint8
	stride int
	width  int
	height int
}

// NewRegion wraps a tightly packed RGB buffer of width*height pixels.
func NewRegion(pix []uint8, width, height int) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("%w: size %dx%d", ErrInvalidInput, width, height)
	}
	if len(pix) != width*height*BytesPerPixel {
		return Region{}, fmt.Errorf("%w: buffer holds %d bytes, want %d for %dx%d",
			ErrInvalidInput, len(pix), width*height*BytesPerPixel, width, height)
	}
	return Region{pix: pix, stride: width * BytesPerPixel, width: width, height: height}, nil
}

// FromImage copies an image into a Region. An empty image yields an empty Region.
// Colors are taken un-premultiplied, so alpha is ignored rather than darkening
// translucent pixels.
func FromImage(img image.Image) Region {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return Region{}
	}

	pix := make([]uint8, width*height*BytesPerPixel)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			i += BytesPerPixel
		}
	}
	return Region{pix: pix, stride: width * BytesPerPixel, width: width, height: height}
}

// Width returns the region width in pixels.
func (r Region) Width() int { return r.width }

// Height returns the region height in pixels.
func (r Region) Height() int { return r.height }

// Empty reports whether the region has no pixels.
func (r Region) Empty() bool { return r.width <= 0 || r.height <= 0 }

// At returns the samples of the pixel at column x, row y.
func (r Region) At(x, y int) (red, green, blue uint8) {
	i := y*r.stride + x*BytesPerPixel
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// Sub returns the w*h view whose top-left corner is at (x, y).
func (r Region) Sub(x, y, w, h int) (Region, error) {
	if w <= 0 || h <= 0 {
		return Region{}, fmt.Errorf("%w: sub-region size %dx%d", ErrInvalidInput, w, h)
	}
	if x < 0 || y < 0 || x+w > r.width || y+h > r.height {
		return Region{}, fmt.Errorf("%w: sub-region %dx%d at (%d,%d) exceeds %dx%d",
			ErrInvalidInput, w, h, x, y, r.width, r.height)
	}
	offset := y*r.stride + x*BytesPerPixel
	end := offset + (h-1)*r.stride + w*BytesPerPixel
	return Region{
		pix:    r.pix[offset:end:end],
		stride: r.stride,
		width:  w,
		height: h,
	}, nil
}
