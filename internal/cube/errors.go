package cube

import "errors"

var (
	// ErrInvalidInput is returned for zero-area or malformed pixel regions.
	ErrInvalidInput = errors.New("invalid input region")

	// ErrEmptyPalette is returned when classification is attempted without reference colors.
	ErrEmptyPalette = errors.New("palette is empty")

	// ErrDimensionMismatch is returned when a face region cannot be partitioned into a 3x3 grid.
	ErrDimensionMismatch = errors.New("region cannot be partitioned into grid")

	// ErrInvalidPalette is returned when a palette does not hold exactly one valid color per label.
	ErrInvalidPalette = errors.New("invalid palette")

	// ErrUnknownLabel is returned when a label name is not one of the six sticker colors.
	ErrUnknownLabel = errors.New("unknown color label")
)
