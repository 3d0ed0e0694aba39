package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/cube"
)

func TestRespondJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondJSON(recorder, http.StatusCreated, map[string]int{"count": 9})

	if recorder.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	var result map[string]int
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result["count"] != 9 {
		t.Errorf("expected count 9, got %d", result["count"])
	}
}

func TestRespondJSON_NilData(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondJSON(recorder, http.StatusOK, nil)

	if recorder.Body.Len() != 0 {
		t.Errorf("expected empty body, got '%s'", recorder.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondError(recorder, http.StatusBadRequest, "missing image")

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result["error"] != "missing image" {
		t.Errorf("expected error 'missing image', got '%s'", result["error"])
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"bad form", fmt.Errorf("%w: missing field", errBadRequest), http.StatusBadRequest},
		{"undecodable image", fmt.Errorf("%w: bad header", capture.ErrDecode), http.StatusBadRequest},
		{"empty region", fmt.Errorf("x: %w", cube.ErrInvalidInput), http.StatusUnprocessableEntity},
		{"face too small", cube.ErrDimensionMismatch, http.StatusUnprocessableEntity},
		{"empty palette", cube.ErrEmptyPalette, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.expected {
				t.Errorf("expected status %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestSanitizeForLog(t *testing.T) {
	if got := sanitizeForLog("White Red\nBlue\r\n"); got != "White RedBlue" {
		t.Errorf("expected newlines removed, got %q", got)
	}
}

func TestCaptureOptionsFromForm(t *testing.T) {
	defaults := capture.Options{ROISize: 300, ScaleSize: 90}

	tests := []struct {
		name     string
		roi      string
		expected int
		wantErr  bool
	}{
		{"default", "", 300, false},
		{"override", "120", 120, false},
		{"whole frame", "0", 0, false},
		{"negative", "-1", 0, true},
		{"non-numeric", "big", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/?roi="+tc.roi, nil)
			opts, err := captureOptionsFromForm(req, defaults)
			if tc.wantErr {
				if !errors.Is(err, errBadRequest) {
					t.Errorf("expected bad request error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.ROISize != tc.expected || opts.ScaleSize != 90 {
				t.Errorf("unexpected options %+v", opts)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	HealthCheck(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", result["status"])
	}
}
