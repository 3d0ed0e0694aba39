package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/spf13/cobra"
)

// addCaptureFlags registers the ROI flags shared by commands that read images.
func addCaptureFlags(cmd *cobra.Command) {
	cmd.Flags().Int("roi", -1, "Side of the centered square to crop (0 = whole image, default CUBE_ROI_SIZE)")
	cmd.Flags().Int("scale", -1, "Rescale the crop to this side before sampling (0 = off, default CUBE_SCALE_SIZE)")
}

// captureOptions merges the ROI flags with the configured defaults.
func captureOptions(cmd *cobra.Command, cfg *config.Config) capture.Options {
	opts := capture.Options{
		ROISize:   cfg.Capture.ROISize,
		ScaleSize: cfg.Capture.ScaleSize,
	}
	if roi := mustGetInt(cmd, "roi"); roi >= 0 {
		opts.ROISize = roi
	}
	if scale := mustGetInt(cmd, "scale"); scale >= 0 {
		opts.ScaleSize = scale
	}
	return opts
}

// loadClassifier builds a classifier from --palette, CUBE_PALETTE_PATH or the built-in palette.
func loadClassifier(cmd *cobra.Command, cfg *config.Config) (*classifier.Classifier, error) {
	paletteCfg := cfg.Palette
	if path := mustGetString(cmd, "palette"); path != "" {
		paletteCfg.Path = path
	}
	palette, weights, err := paletteCfg.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("failed to load palette: %w", err)
	}
	c, err := classifier.New(palette, weights)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func outputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
