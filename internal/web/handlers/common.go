package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/cube"
)

// errBadRequest marks client errors in the request form.
var errBadRequest = errors.New("bad request")

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps pipeline errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, capture.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, cube.ErrInvalidInput), errors.Is(err, cube.ErrDimensionMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// parseMultipart limits the request body and parses the multipart form.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form: %v", errBadRequest, err)
	}
	return nil
}

// readFormFile returns the contents of one uploaded file.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: missing file field %q", errBadRequest, field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	return data, nil
}

// captureOptionsFromForm overrides the ROI size with the optional "roi" form value.
func captureOptionsFromForm(r *http.Request, defaults capture.Options) (capture.Options, error) {
	opts := defaults
	if v := r.FormValue("roi"); v != "" {
		roi, err := strconv.Atoi(v)
		if err != nil || roi < 0 {
			return opts, fmt.Errorf("%w: invalid roi %q", errBadRequest, v)
		}
		opts.ROISize = roi
	}
	return opts, nil
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
