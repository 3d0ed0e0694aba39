package cmd

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/cube-scanner/internal/calibration"
	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Derive a palette from one photo of each face color",
	Long: `Measure the median HSV color of six reference photos, one per sticker
color, and write them as a palette file for classify, scan and serve.

Each photo should show a solid face of the given color filling the centered
region, taken under the lighting the scanner will be used in.

Examples:
  cube-scanner calibrate \
    --white w.jpg --yellow y.jpg --red r.jpg \
    --blue b.jpg --orange o.jpg --green g.jpg \
    --output palette.yaml`,
	Args: cobra.NoArgs,
	RunE: runCalibrate,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)

	addCaptureFlags(calibrateCmd)
	for _, label := range cube.Labels() {
		name := strings.ToLower(string(label))
		calibrateCmd.Flags().String(name, "", fmt.Sprintf("Photo of the %s face", name))
		_ = calibrateCmd.MarkFlagRequired(name)
	}
	calibrateCmd.Flags().StringP("output", "o", "palette.yaml", "Palette file to write")
	calibrateCmd.Flags().Bool("dry-run", false, "Print the measured colors without writing the file")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	output := mustGetString(cmd, "output")
	dryRun := mustGetBool(cmd, "dry-run")

	cfg := config.Load()
	opts := captureOptions(cmd, cfg)

	current, err := loadClassifier(cmd, cfg)
	if err != nil {
		return err
	}

	faces := make(map[cube.Label]cube.Region, len(cube.Labels()))
	for _, label := range cube.Labels() {
		path := mustGetString(cmd, strings.ToLower(string(label)))
		region, err := capture.LoadFace(path, opts)
		if err != nil {
			return fmt.Errorf("%s face: %w", label, err)
		}
		faces[label] = region
	}

	palette, err := calibration.Calibrate(faces)
	if err != nil {
		return fmt.Errorf("calibration failed: %w", err)
	}

	for _, line := range describeCalibration(palette, current.Palette()) {
		fmt.Println(line)
	}

	if dryRun {
		fmt.Println("\nDry run - palette not written")
		return nil
	}

	if err := calibration.Save(output, palette, current.Weights()); err != nil {
		return err
	}
	fmt.Printf("\nPalette written to %s\n", output)
	return nil
}

// describeCalibration formats each measured color next to the one it replaces.
func describeCalibration(measured, previous cube.Palette) []string {
	lines := make([]string, 0, len(measured))
	for _, ref := range measured {
		line := fmt.Sprintf("%s: %s", ref.Label, ref.Color)
		if old, ok := previous.Lookup(ref.Label); ok && old.Color != ref.Color {
			line += fmt.Sprintf(" (was %s)", old.Color)
		}
		lines = append(lines, line)
	}
	return lines
}
