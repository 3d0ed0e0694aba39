package cube

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label names one of the six sticker colors.
type Label string

// Sticker labels in canonical order.
const (
	White  Label = "White"
	Yellow Label = "Yellow"
	Red    Label = "Red"
	Blue   Label = "Blue"
	Orange Label = "Orange"
	Green  Label = "Green"
)

// Labels returns all sticker labels in canonical order.
func Labels() []Label {
	return []Label{White, Yellow, Red, Blue, Orange, Green}
}

// displayHex holds the color each label is drawn with.
var displayHex = map[Label]string{
	White:  "#ffffff",
	Yellow: "#ffff00",
	Red:    "#ff0000",
	Blue:   "#0000ff",
	Orange: "#ffa500",
	Green:  "#00ff00",
}

// Valid reports whether l is one of the six sticker labels.
func (l Label) Valid() bool {
	_, ok := displayHex[l]
	return ok
}

// Display returns the opaque color used to draw the label.
func (l Label) Display() color.RGBA {
	hex, ok := displayHex[l]
	if !ok {
		return color.RGBA{A: 255}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// normalizeName strips diacritics, surrounding spaces and case.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return strings.ToLower(strings.TrimSpace(result))
}

// ParseLabel converts a color name like "white" or " ORANGE " to a Label.
func ParseLabel(s string) (Label, error) {
	name := normalizeName(s)
	for _, l := range Labels() {
		if strings.ToLower(string(l)) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

func (l Label) String() string {
	return string(l)
}
