// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Capture constants
const (
	// DefaultROISize is the side of the centered square cropped from each frame.
	// Matches the 300x300 guide box shown during camera capture.
	DefaultROISize = 300

	// DefaultScaleSize is the side the ROI is rescaled to; 0 disables rescaling
	DefaultScaleSize = 0
)

// Processing constants
const (
	// DefaultWorkers is the default number of files classified in parallel by batch scans
	DefaultWorkers = 4

	// MaxWorkers caps batch scan parallelism
	MaxWorkers = 64
)

// Render constants
const (
	// DefaultRenderSize is the side in pixels of a rendered face image
	DefaultRenderSize = 300
)
