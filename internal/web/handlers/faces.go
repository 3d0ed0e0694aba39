package handlers

import (
	"bytes"
	"net/http"

	"github.com/google/uuid"
	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/facegrid"
	"github.com/kozaktomas/cube-scanner/internal/render"
	"github.com/sirupsen/logrus"
)

// FacesHandler handles face classification endpoints.
type FacesHandler struct {
	classifier *classifier.Classifier
	capture    capture.Options
	maxUpload  int64
}

// NewFacesHandler creates a new faces handler.
func NewFacesHandler(c *classifier.Classifier, opts capture.Options, maxUpload int64) *FacesHandler {
	if maxUpload <= 0 {
		maxUpload = constants.MaxUploadSize
	}
	return &FacesHandler{
		classifier: c,
		capture:    opts,
		maxUpload:  maxUpload,
	}
}

// ClassifyResponse represents one classified face.
type ClassifyResponse struct {
	ScanID string         `json:"scan_id"`
	Labels []cube.Label   `json:"labels"`
	Cells  []CellResponse `json:"cells"`
}

// CellResponse represents one classified sticker.
type CellResponse struct {
	Index    int        `json:"index"`
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	Label    cube.Label `json:"label"`
	H        float64    `json:"h"`
	S        float64    `json:"s"`
	V        float64    `json:"v"`
	Distance float64    `json:"distance"`
}

// classifyUpload decodes the uploaded image and classifies its face.
func (h *FacesHandler) classifyUpload(w http.ResponseWriter, r *http.Request) (facegrid.Grid, error) {
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		return facegrid.Grid{}, err
	}
	opts, err := captureOptionsFromForm(r, h.capture)
	if err != nil {
		return facegrid.Grid{}, err
	}
	data, err := readFormFile(r, constants.ImageFormField)
	if err != nil {
		return facegrid.Grid{}, err
	}
	region, err := capture.FaceFromBytes(data, opts)
	if err != nil {
		return facegrid.Grid{}, err
	}
	return facegrid.ClassifyFace(region, h.classifier)
}

// Classify handles POST /api/v1/classify.
func (h *FacesHandler) Classify(w http.ResponseWriter, r *http.Request) {
	grid, err := h.classifyUpload(w, r)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	resp := ClassifyResponse{
		ScanID: uuid.New().String(),
		Labels: grid.Labels(),
		Cells:  make([]CellResponse, len(grid)),
	}
	for i, c := range grid {
		resp.Cells[i] = CellResponse{
			Index:    i,
			Row:      i / facegrid.Size,
			Col:      i % facegrid.Size,
			Label:    c.Label,
			H:        c.Sample.H,
			S:        c.Sample.S,
			V:        c.Sample.V,
			Distance: c.Distance,
		}
	}
	logrus.WithFields(logrus.Fields{
		"scan_id": resp.ScanID,
		"labels":  sanitizeForLog(grid.String()),
	}).Info("classified face")

	respondJSON(w, http.StatusOK, resp)
}

// Render handles POST /api/v1/classify/render and returns a PNG of the detected face.
func (h *FacesHandler) Render(w http.ResponseWriter, r *http.Request) {
	grid, err := h.classifyUpload(w, r)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, render.Face(grid, constants.DefaultRenderSize)); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
