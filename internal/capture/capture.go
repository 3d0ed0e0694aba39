// Package capture turns image files into face regions for classification.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/kozaktomas/cube-scanner/internal/cube"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when image data cannot be decoded.
var ErrDecode = errors.New("failed to decode image")

// Options control how a face is cut out of a captured frame.
type Options struct {
	ROISize   int // side of the centered square to crop; 0 uses the whole frame
	ScaleSize int // side to rescale the crop to; 0 keeps the cropped size
}

// Decode reads a JPEG, PNG, GIF, BMP or WebP image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

// CenterROI crops a centered size*size square from the image.
// The square is clamped to the shorter image side. A size of 0 or less
// returns the image unchanged.
func CenterROI(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	bounds := img.Bounds()
	size = min(size, bounds.Dx(), bounds.Dy())
	x := bounds.Min.X + (bounds.Dx()-size)/2
	y := bounds.Min.Y + (bounds.Dy()-size)/2
	roi := image.Rect(x, y, x+size, y+size)

	if sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(roi)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), img, roi.Min, draw.Src)
	return dst
}

// Rescale resizes the image to size*size with bilinear interpolation.
// A size of 0 or less returns the image unchanged.
func Rescale(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Face crops and rescales a frame and returns the face region.
func Face(img image.Image, opts Options) (cube.Region, error) {
	face := Rescale(CenterROI(img, opts.ROISize), opts.ScaleSize)
	region := cube.FromImage(face)
	if region.Empty() {
		return cube.Region{}, fmt.Errorf("empty face region: %w", cube.ErrInvalidInput)
	}
	return region, nil
}

// FaceFromBytes decodes image data and returns the face region.
func FaceFromBytes(data []byte, opts Options) (cube.Region, error) {
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return cube.Region{}, err
	}
	return Face(img, opts)
}

// LoadFace reads an image file and returns the face region.
func LoadFace(path string, opts Options) (cube.Region, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return cube.Region{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return cube.Region{}, fmt.Errorf("%s: %w", path, err)
	}
	return Face(img, opts)
}
