// Package facegrid splits a face region into a 3x3 grid and classifies each cell.
package facegrid

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/sampler"
)

// Size is the number of rows and columns on a face.
const Size = 3

// Cells is the number of stickers on a face.
const Cells = Size * Size

// Grid holds the classification of each sticker, row-major from the top-left.
type Grid [Cells]classifier.Result

// Labels returns the nine labels in row-major order.
func (g Grid) Labels() []cube.Label {
	labels := make([]cube.Label, Cells)
	for i, r := range g {
		labels[i] = r.Label
	}
	return labels
}

// String renders the grid as three lines of labels.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(g[row*Size+col].Label))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellRects returns the rectangle of every cell in a width*height face, row-major.
// Cells are floor(width/3) by floor(height/3); leftover pixels on the right
// and bottom edges are discarded.
func CellRects(width, height int) ([Cells]image.Rectangle, error) {
	var rects [Cells]image.Rectangle
	if width < Size || height < Size {
		return rects, fmt.Errorf("%w: %dx%d face is smaller than %dx%d",
			cube.ErrDimensionMismatch, width, height, Size, Size)
	}
	cw, ch := width/Size, height/Size
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			x, y := col*cw, row*ch
			rects[row*Size+col] = image.Rect(x, y, x+cw, y+ch)
		}
	}
	return rects, nil
}

// Split returns the nine cell views of a face region, row-major.
func Split(region cube.Region) ([Cells]cube.Region, error) {
	var cells [Cells]cube.Region
	if region.Empty() {
		return cells, fmt.Errorf("splitting face: %w", cube.ErrInvalidInput)
	}
	rects, err := CellRects(region.Width(), region.Height())
	if err != nil {
		return cells, err
	}
	for i, r := range rects {
		cell, err := region.Sub(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		if err != nil {
			return cells, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = cell
	}
	return cells, nil
}

// ClassifyFace samples and classifies every cell of a face region.
//
// Cells are processed concurrently; the grid is always assembled in
// row-major order. If any cell fails, the error of the lowest-numbered
// failing cell is returned and no grid is produced.
func ClassifyFace(region cube.Region, c *classifier.Classifier) (Grid, error) {
	if c == nil {
		return Grid{}, cube.ErrEmptyPalette
	}
	return classifyFace(region, func(_ int, cell cube.Region) (classifier.Result, error) {
		return classifyCell(cell, c)
	})
}

// cellFunc classifies the cell at a row-major index.
type cellFunc func(idx int, cell cube.Region) (classifier.Result, error)

func classifyFace(region cube.Region, classify cellFunc) (Grid, error) {
	var grid Grid
	cells, err := Split(region)
	if err != nil {
		return grid, err
	}

	var errs [Cells]error
	var wg sync.WaitGroup
	for i := range cells {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			grid[idx], errs[idx] = classify(idx, cells[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Grid{}, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	return grid, nil
}

func classifyCell(cell cube.Region, c *classifier.Classifier) (classifier.Result, error) {
	sample, err := sampler.Sample(cell)
	if err != nil {
		return classifier.Result{}, err
	}
	return c.Classify(sample)
}
