package cube

import "fmt"

// ReferenceColor is the calibrated appearance of one sticker color.
type ReferenceColor struct {
	Label Label `json:"label"`
	Color HSV   `json:"color"`
}

// Palette is an ordered list of reference colors. Order decides ties.
type Palette []ReferenceColor

// Weights scale the per-channel terms of the color distance.
type Weights struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Value      float64 `json:"value" yaml:"value"`
}

// DefaultWeights favor hue, which is the most stable channel under changing light.
func DefaultWeights() Weights {
	return Weights{Hue: 0.6, Saturation: 0.3, Value: 0.1}
}

// Validate checks that all weights are non-negative and at least one is positive.
func (w Weights) Validate() error {
	if w.Hue < 0 || w.Saturation < 0 || w.Value < 0 {
		return fmt.Errorf("%w: negative weight %+v", ErrInvalidPalette, w)
	}
	if w.Hue+w.Saturation+w.Value == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidPalette)
	}
	return nil
}

// DefaultPalette returns reference colors measured under indoor lighting.
func DefaultPalette() Palette {
	return Palette{
		{Label: White, Color: HSV{H: 23, S: 31, V: 215}},
		{Label: Yellow, Color: HSV{H: 62, S: 181, V: 221}},
		{Label: Red, Color: HSV{H: 356, S: 200, V: 233}},
		{Label: Blue, Color: HSV{H: 231, S: 165, V: 166}},
		{Label: Orange, Color: HSV{H: 10, S: 188, V: 254}},
		{Label: Green, Color: HSV{H: 137, S: 228, V: 192}},
	}
}

// Validate checks that the palette holds exactly one in-range color for each label.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	if len(p) != len(Labels()) {
		return fmt.Errorf("%w: expected %d colors, got %d", ErrInvalidPalette, len(Labels()), len(p))
	}
	seen := make(map[Label]bool, len(p))
	for i, ref := range p {
		if !ref.Label.Valid() {
			return fmt.Errorf("%w: entry %d: %w: %q", ErrInvalidPalette, i, ErrUnknownLabel, ref.Label)
		}
		if seen[ref.Label] {
			return fmt.Errorf("%w: duplicate label %s", ErrInvalidPalette, ref.Label)
		}
		seen[ref.Label] = true
		if !ref.Color.Valid() {
			return fmt.Errorf("%w: %s color %s out of range", ErrInvalidPalette, ref.Label, ref.Color)
		}
	}
	return nil
}

// Lookup returns the reference color for a label.
func (p Palette) Lookup(l Label) (ReferenceColor, bool) {
	for _, ref := range p {
		if ref.Label == l {
			return ref, true
		}
	}
	return ReferenceColor{}, false
}
