// Package classifier maps a measured HSV color to the nearest reference color.
package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/kozaktomas/cube-scanner/internal/cube"
)

// Result is the outcome of classifying one sample.
type Result struct {
	Label    cube.Label `json:"label"`
	Sample   cube.HSV   `json:"sample"`
	Distance float64    `json:"distance"`
}

// Candidate is one reference color with its distance to a sample.
type Candidate struct {
	Reference cube.ReferenceColor `json:"reference"`
	Distance  float64             `json:"distance"`
}

// Classifier holds an immutable palette and distance weights.
type Classifier struct {
	palette cube.Palette
	weights cube.Weights
}

// New creates a classifier. The palette must hold exactly one color per label.
func New(palette cube.Palette, weights cube.Weights) (*Classifier, error) {
	if err := palette.Validate(); err != nil {
		return nil, fmt.Errorf("creating classifier: %w", err)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("creating classifier: %w", err)
	}
	own := make(cube.Palette, len(palette))
	copy(own, palette)
	return &Classifier{palette: own, weights: weights}, nil
}

// Default creates a classifier with the built-in palette and weights.
func Default() *Classifier {
	c, err := New(cube.DefaultPalette(), cube.DefaultWeights())
	if err != nil {
		panic("default palette is invalid: " + err.Error())
	}
	return c
}

// Palette returns a copy of the reference colors.
func (c *Classifier) Palette() cube.Palette {
	out := make(cube.Palette, len(c.palette))
	copy(out, c.palette)
	return out
}

// Weights returns the distance weights.
func (c *Classifier) Weights() cube.Weights {
	return c.weights
}

// Classify returns the nearest reference label for the sample.
func (c *Classifier) Classify(sample cube.HSV) (Result, error) {
	return Classify(sample, c.palette, c.weights)
}

// Ranked returns every reference ordered by distance, nearest first.
// Equal distances keep palette order.
func (c *Classifier) Ranked(sample cube.HSV) []Candidate {
	candidates := make([]Candidate, len(c.palette))
	for i, ref := range c.palette {
		candidates[i] = Candidate{Reference: ref, Distance: Distance(sample, ref.Color, c.weights)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	return candidates
}

// Classify returns the label of the palette entry nearest to the sample.
// When two entries are exactly equally distant the one listed first wins.
func Classify(sample cube.HSV, palette cube.Palette, weights cube.Weights) (Result, error) {
	if len(palette) == 0 {
		return Result{}, cube.ErrEmptyPalette
	}

	best := -1
	minDist := math.Inf(1)
	for i, ref := range palette {
		d := Distance(sample, ref.Color, weights)
		if d < minDist {
			minDist = d
			best = i
		}
	}
	// NaN distances never compare less than +Inf.
	if best < 0 {
		return Result{}, fmt.Errorf("%w: sample %s has no finite distance", cube.ErrInvalidInput, sample)
	}

	return Result{Label: palette[best].Label, Sample: sample, Distance: minDist}, nil
}

// HueDistance returns the angular distance between two hues in degrees, in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, cube.HueMax-d)
}

// Distance returns the weighted squared distance between two colors.
func Distance(a, b cube.HSV, w cube.Weights) float64 {
	dh := HueDistance(a.H, b.H)
	ds := a.S - b.S
	dv := a.V - b.V
	return w.Hue*dh*dh + w.Saturation*ds*ds + w.Value*dv*dv
}
