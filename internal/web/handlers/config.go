package handlers

import (
	"net/http"

	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/cube"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the capture settings a client needs to frame a face
type ConfigResponse struct {
	ROISize        int          `json:"roi_size"`
	ScaleSize      int          `json:"scale_size"`
	MaxUploadBytes int64        `json:"max_upload_bytes"`
	ImageField     string       `json:"image_field"`
	Labels         []cube.Label `json:"labels"`
	CustomPalette  bool         `json:"custom_palette"`
}

// Get returns the active configuration
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	maxUpload := h.config.Web.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = constants.MaxUploadSize
	}
	respondJSON(w, http.StatusOK, ConfigResponse{
		ROISize:        h.config.Capture.ROISize,
		ScaleSize:      h.config.Capture.ScaleSize,
		MaxUploadBytes: maxUpload,
		ImageField:     constants.ImageFormField,
		Labels:         cube.Labels(),
		CustomPalette:  h.config.Palette.Path != "",
	})
}
