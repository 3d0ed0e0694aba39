package cmd

import (
	"testing"

	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/scanner"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
)

func TestCaptureOptions(t *testing.T) {
	cfg := &config.Config{Capture: config.CaptureConfig{ROISize: 300, ScaleSize: 0}}

	tests := []struct {
		name          string
		flags         map[string]string
		expectedROI   int
		expectedScale int
	}{
		{"defaults from config", nil, 300, 0},
		{"whole image", map[string]string{"roi": "0"}, 0, 0},
		{"crop and rescale", map[string]string{"roi": "200", "scale": "90"}, 200, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			addCaptureFlags(cmd)
			for name, value := range tc.flags {
				if err := cmd.Flags().Set(name, value); err != nil {
					t.Fatalf("failed to set --%s: %v", name, err)
				}
			}

			opts := captureOptions(cmd, cfg)
			if opts.ROISize != tc.expectedROI || opts.ScaleSize != tc.expectedScale {
				t.Errorf("expected roi=%d scale=%d, got %+v", tc.expectedROI, tc.expectedScale, opts)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	got := indent("White Red Blue\nGreen Green Green\n")
	expected := "  White Red Blue\n  Green Green Green\n"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestDescribeCalibration(t *testing.T) {
	previous := cube.DefaultPalette()
	measured := cube.DefaultPalette()
	measured[2].Color = cube.HSV{H: 1, S: 210, V: 240}

	lines := describeCalibration(measured, previous)

	if len(lines) != len(measured) {
		t.Fatalf("expected %d lines, got %d", len(measured), len(lines))
	}
	if lines[0] != "White: [23.0, 31.0, 215.0]" {
		t.Errorf("unexpected unchanged line %q", lines[0])
	}
	expected := "Red: [1.0, 210.0, 240.0] (was [356.0, 200.0, 233.0])"
	if lines[2] != expected {
		t.Errorf("expected %q, got %q", expected, lines[2])
	}
}

func TestLogScanProgress(t *testing.T) {
	hook := logtest.NewGlobal()
	original := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetLevel(original)
		hook.Reset()
	})

	logScanProgress(scanner.ProgressInfo{Current: 2, Total: 6, Path: "faces/red.png"})

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", entry.Level)
	}
	if entry.Data["file"] != "faces/red.png" || entry.Data["done"] != 2 || entry.Data["total"] != 6 {
		t.Errorf("unexpected fields %v", entry.Data)
	}
}
