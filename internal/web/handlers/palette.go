package handlers

import (
	"net/http"
	"strings"

	"github.com/kozaktomas/cube-scanner/internal/calibration"
	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/cube"
)

// PaletteHandler handles palette endpoints.
type PaletteHandler struct {
	classifier *classifier.Classifier
	capture    capture.Options
	maxUpload  int64
}

// NewPaletteHandler creates a new palette handler.
func NewPaletteHandler(c *classifier.Classifier, opts capture.Options, maxUpload int64) *PaletteHandler {
	if maxUpload <= 0 {
		maxUpload = constants.MaxUploadSize
	}
	return &PaletteHandler{
		classifier: c,
		capture:    opts,
		maxUpload:  maxUpload,
	}
}

// PaletteResponse represents a palette with its distance weights.
type PaletteResponse struct {
	Weights cube.Weights `json:"weights"`
	Colors  cube.Palette `json:"colors"`
}

// Get returns the palette in use.
func (h *PaletteHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, PaletteResponse{
		Weights: h.classifier.Weights(),
		Colors:  h.classifier.Palette(),
	})
}

// Calibrate derives a palette from one uploaded photo per label.
// Form fields are the lowercase label names. The palette is returned, not applied;
// pass ?format=yaml to get a file usable with CUBE_PALETTE_PATH.
func (h *PaletteHandler) Calibrate(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	opts, err := captureOptionsFromForm(r, h.capture)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	faces := make(map[cube.Label]cube.Region, len(cube.Labels()))
	for _, label := range cube.Labels() {
		data, err := readFormFile(r, strings.ToLower(string(label)))
		if err != nil {
			respondError(w, statusForError(err), err.Error())
			return
		}
		region, err := capture.FaceFromBytes(data, opts)
		if err != nil {
			respondError(w, statusForError(err), label.String()+": "+err.Error())
			return
		}
		faces[label] = region
	}

	palette, err := calibration.Calibrate(faces)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	weights := h.classifier.Weights()

	if r.URL.Query().Get("format") == "yaml" {
		data, err := calibration.Marshal(palette, weights)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	respondJSON(w, http.StatusOK, PaletteResponse{Weights: weights, Colors: palette})
}
