// Package calibration derives reference colors from sample faces and stores them as YAML.
package calibration

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/sampler"
	"gopkg.in/yaml.v3"
)

// File is the on-disk palette format.
type File struct {
	Weights cube.Weights `yaml:"weights"`
	Colors  []Entry      `yaml:"colors"`
}

// Entry is one labelled reference color in a palette file.
type Entry struct {
	Label string  `yaml:"label"`
	H     float64 `yaml:"h"`
	S     float64 `yaml:"s"`
	V     float64 `yaml:"v"`
}

// Calibrate samples one face region per label and returns the resulting palette
// in canonical label order.
func Calibrate(faces map[cube.Label]cube.Region) (cube.Palette, error) {
	palette := make(cube.Palette, 0, len(cube.Labels()))
	for _, label := range cube.Labels() {
		region, ok := faces[label]
		if !ok {
			return nil, fmt.Errorf("%w: no sample for %s", cube.ErrInvalidPalette, label)
		}
		c, err := sampler.Sample(region)
		if err != nil {
			return nil, fmt.Errorf("sampling %s: %w", label, err)
		}
		palette = append(palette, cube.ReferenceColor{Label: label, Color: c})
	}
	return palette, nil
}

// Parse decodes and validates a YAML palette document.
// Missing weights fall back to the defaults. A hue of 360 is read as 0.
func Parse(data []byte) (cube.Palette, cube.Weights, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, cube.Weights{}, fmt.Errorf("failed to parse palette: %w", err)
	}

	weights := f.Weights
	if weights == (cube.Weights{}) {
		weights = cube.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, cube.Weights{}, err
	}

	palette := make(cube.Palette, 0, len(f.Colors))
	for _, e := range f.Colors {
		label, err := cube.ParseLabel(e.Label)
		if err != nil {
			return nil, cube.Weights{}, fmt.Errorf("%w: %w", cube.ErrInvalidPalette, err)
		}
		palette = append(palette, cube.ReferenceColor{
			Label: label,
			Color: cube.HSV{H: math.Mod(e.H, cube.HueMax), S: e.S, V: e.V},
		})
	}
	if err := palette.Validate(); err != nil {
		if errors.Is(err, cube.ErrEmptyPalette) {
			return nil, cube.Weights{}, fmt.Errorf("%w: %w", cube.ErrInvalidPalette, err)
		}
		return nil, cube.Weights{}, err
	}
	return palette, weights, nil
}

// Marshal encodes a palette and weights as YAML.
func Marshal(palette cube.Palette, weights cube.Weights) ([]byte, error) {
	f := File{Weights: weights, Colors: make([]Entry, len(palette))}
	for i, ref := range palette {
		f.Colors[i] = Entry{Label: string(ref.Label), H: ref.Color.H, S: ref.Color.S, V: ref.Color.V}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return data, nil
}

// Load reads a palette file.
func Load(path string) (cube.Palette, cube.Weights, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return nil, cube.Weights{}, fmt.Errorf("failed to read palette file: %w", err)
	}
	palette, weights, err := Parse(data)
	if err != nil {
		return nil, cube.Weights{}, fmt.Errorf("%s: %w", path, err)
	}
	return palette, weights, nil
}

// Save validates and writes a palette file.
func Save(path string, palette cube.Palette, weights cube.Weights) error {
	if err := palette.Validate(); err != nil {
		return err
	}
	if err := weights.Validate(); err != nil {
		return err
	}
	data, err := Marshal(palette, weights)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}
