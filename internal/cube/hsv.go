package cube

import "fmt"

// Channel ranges. Saturation and value share the 0-255 scale everywhere.
const (
	HueMax     = 360.0
	ChannelMax = 255.0
)

// HSV is a color in hue/saturation/value space.
// H is in degrees [0, 360), S and V are in [0, 255].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Valid reports whether every channel is inside its range.
func (c HSV) Valid() bool {
	return c.H >= 0 && c.H < HueMax &&
		c.S >= 0 && c.S <= ChannelMax &&
		c.V >= 0 && c.V <= ChannelMax
}

func (c HSV) String() string {
	return fmt.Sprintf("[%.1f, %.1f, %.1f]", c.H, c.S, c.V)
}
