package cmd

import (
	"fmt"
	"os"

	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/facegrid"
	"github.com/kozaktomas/cube-scanner/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <image>",
	Short: "Classify the nine sticker colors of one face image",
	Long: `Crop the centered region of an image, split it into a 3x3 grid and print
the color label of each square in row-major order.

Examples:
  # Classify a photo with the built-in palette
  cube-scanner classify face.jpg

  # Use a calibrated palette and write a preview image
  cube-scanner classify --palette palette.yaml --render detected.png face.jpg

  # Use the whole image instead of the centered 300x300 square
  cube-scanner classify --roi 0 --json face.png`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	addCaptureFlags(classifyCmd)
	classifyCmd.Flags().Bool("json", false, "Output as JSON")
	classifyCmd.Flags().String("render", "", "Write a PNG of the detected face to this path")
}

// faceReport is the JSON output for one classified face.
type faceReport struct {
	File   string        `json:"file"`
	Labels []cube.Label  `json:"labels"`
	Cells  facegrid.Grid `json:"cells"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	jsonOutput := mustGetBool(cmd, "json")
	renderPath := mustGetString(cmd, "render")

	cfg := config.Load()
	c, err := loadClassifier(cmd, cfg)
	if err != nil {
		return err
	}

	region, err := capture.LoadFace(path, captureOptions(cmd, cfg))
	if err != nil {
		return err
	}

	grid, err := facegrid.ClassifyFace(region, c)
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", path, err)
	}
	logCandidates(path, grid, c)

	if renderPath != "" {
		if err := writeRender(renderPath, grid); err != nil {
			return err
		}
	}

	if jsonOutput {
		return outputJSON(faceReport{File: path, Labels: grid.Labels(), Cells: grid})
	}

	for i, r := range grid {
		fmt.Printf("Square %d: %s\n", i, r.Label)
	}
	if renderPath != "" {
		fmt.Printf("\nDetected face written to %s\n", renderPath)
	}
	return nil
}

// logCandidates logs the measured color and ranked references of every cell at debug level.
func logCandidates(path string, grid facegrid.Grid, c *classifier.Classifier) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for i, r := range grid {
		ranked := c.Ranked(r.Sample)
		fields := logrus.Fields{
			"file":  path,
			"cell":  i,
			"hsv":   r.Sample.String(),
			"label": r.Label,
		}
		if len(ranked) > 1 {
			fields["runner_up"] = ranked[1].Reference.Label
			fields["margin"] = fmt.Sprintf("%.1f", ranked[1].Distance-ranked[0].Distance)
		}
		logrus.WithFields(fields).Debug("classified cell")
	}
}

func writeRender(path string, grid facegrid.Grid) error {
	f, err := os.Create(path) //nolint:gosec // output path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create render file: %w", err)
	}
	defer f.Close()
	return render.EncodePNG(f, render.Face(grid, constants.DefaultRenderSize))
}
