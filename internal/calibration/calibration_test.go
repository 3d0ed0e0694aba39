package calibration

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kozaktomas/cube-scanner/internal/cube"
)

func uniformRegion(t *testing.T, r, g, b uint8) cube.Region {
	t.Helper()
	pix := make([]uint8, 0, 4*4*cube.BytesPerPixel)
	for i := 0; i < 16; i++ {
		pix = append(pix, r, g, b)
	}
	region, err := cube.NewRegion(pix, 4, 4)
	if err != nil {
		t.Fatalf("NewRegion() error = %v", err)
	}
	return region
}

func TestCalibrate(t *testing.T) {
	faces := map[cube.Label]cube.Region{
		cube.White:  uniformRegion(t, 255, 255, 255),
		cube.Yellow: uniformRegion(t, 255, 255, 0),
		cube.Red:    uniformRegion(t, 255, 0, 0),
		cube.Blue:   uniformRegion(t, 0, 0, 255),
		cube.Orange: uniformRegion(t, 255, 128, 0),
		cube.Green:  uniformRegion(t, 0, 255, 0),
	}

	palette, err := Calibrate(faces)
	if err != nil {
		t.Fatalf("Calibrate() error = %v", err)
	}
	if err := palette.Validate(); err != nil {
		t.Fatalf("calibrated palette invalid: %v", err)
	}
	for i, label := range cube.Labels() {
		if palette[i].Label != label {
			t.Errorf("palette[%d].Label = %s, want %s", i, palette[i].Label, label)
		}
	}

	red, _ := palette.Lookup(cube.Red)
	if red.Color != (cube.HSV{H: 0, S: 255, V: 255}) {
		t.Errorf("red = %s, want [0.0, 255.0, 255.0]", red.Color)
	}
	white, _ := palette.Lookup(cube.White)
	if white.Color.S != 0 || white.Color.V != 255 {
		t.Errorf("white = %s, want zero saturation and full value", white.Color)
	}
}

func TestCalibrate_MissingLabel(t *testing.T) {
	faces := map[cube.Label]cube.Region{
		cube.White: uniformRegion(t, 255, 255, 255),
	}
	_, err := Calibrate(faces)
	if !errors.Is(err, cube.ErrInvalidPalette) {
		t.Errorf("Calibrate() error = %v, want ErrInvalidPalette", err)
	}
}

func TestCalibrate_EmptyRegion(t *testing.T) {
	faces := map[cube.Label]cube.Region{}
	for _, label := range cube.Labels() {
		faces[label] = uniformRegion(t, 10, 20, 30)
	}
	faces[cube.Green] = cube.Region{}

	_, err := Calibrate(faces)
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Errorf("Calibrate() error = %v, want ErrInvalidInput", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	weights := cube.Weights{Hue: 0.5, Saturation: 0.25, Value: 0.25}

	if err := Save(path, cube.DefaultPalette(), weights); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	palette, gotWeights, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotWeights != weights {
		t.Errorf("weights = %+v, want %+v", gotWeights, weights)
	}
	expected := cube.DefaultPalette()
	if len(palette) != len(expected) {
		t.Fatalf("palette has %d entries, want %d", len(palette), len(expected))
	}
	for i := range expected {
		if palette[i] != expected[i] {
			t.Errorf("palette[%d] = %+v, want %+v", i, palette[i], expected[i])
		}
	}
}

func TestSave_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")

	if err := Save(path, cube.Palette{}, cube.DefaultWeights()); !errors.Is(err, cube.ErrEmptyPalette) {
		t.Errorf("Save(empty palette) error = %v, want ErrEmptyPalette", err)
	}
	if err := Save(path, cube.DefaultPalette(), cube.Weights{}); err == nil {
		t.Error("Save(zero weights) expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() wrote a file for invalid input")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

const validDoc = `
colors:
  - {label: white, h: 23, s: 31, v: 215}
  - {label: Yellow, h: 62, s: 181, v: 221}
  - {label: red, h: 356, s: 200, v: 233}
  - {label: blue, h: 231, s: 165, v: 166}
  - {label: orange, h: 10, s: 188, v: 254}
  - {label: green, h: 137, s: 228, v: 192}
`

func TestParse_DefaultWeights(t *testing.T) {
	palette, weights, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if weights != cube.DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", weights)
	}
	if palette[1].Label != cube.Yellow {
		t.Errorf("palette[1].Label = %s, want Yellow", palette[1].Label)
	}
}

func TestParse_FullTurnHue(t *testing.T) {
	doc := strings.Replace(validDoc, "h: 356", "h: 360", 1)

	palette, _, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	red, _ := palette.Lookup(cube.Red)
	if red.Color.H != 0 {
		t.Errorf("red hue = %v, want 0", red.Color.H)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "no colors",
			doc:     "weights: {hue: 1, saturation: 0, value: 0}\n",
			wantErr: cube.ErrEmptyPalette,
		},
		{
			name:    "unknown label",
			doc:     strings.Replace(validDoc, "label: green", "label: purple", 1),
			wantErr: cube.ErrUnknownLabel,
		},
		{
			name:    "duplicate label",
			doc:     strings.Replace(validDoc, "label: green", "label: red", 1),
			wantErr: cube.ErrInvalidPalette,
		},
		{
			name:    "negative hue",
			doc:     strings.Replace(validDoc, "h: 356", "h: -5", 1),
			wantErr: cube.ErrInvalidPalette,
		},
		{
			name:    "saturation out of range",
			doc:     strings.Replace(validDoc, "s: 200", "s: 300", 1),
			wantErr: cube.ErrInvalidPalette,
		},
		{
			name:    "missing color",
			doc:     strings.Replace(validDoc, "  - {label: green, h: 137, s: 228, v: 192}\n", "", 1),
			wantErr: cube.ErrInvalidPalette,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, _, err := Parse([]byte("colors: [unterminated")); err == nil {
		t.Error("Parse() expected error for malformed YAML")
	}
}

func TestParse_NegativeWeight(t *testing.T) {
	doc := "weights: {hue: -1, saturation: 1, value: 1}\n" + validDoc
	if _, _, err := Parse([]byte(doc)); err == nil {
		t.Error("Parse() expected error for negative weight")
	}
}
