// Package constants provides shared constants used across the codebase.
package constants

// File upload constants
const (
	// MaxUploadSize is the default maximum upload size in bytes (20MB)
	MaxUploadSize = 20 << 20

	// ImageFormField is the multipart field holding the face image
	ImageFormField = "image"
)
