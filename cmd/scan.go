package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/kozaktomas/cube-scanner/internal/facegrid"
	"github.com/kozaktomas/cube-scanner/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Classify every face image in a directory",
	Long: `Classify all JPEG, PNG, GIF, BMP and WebP files in a directory in parallel
and print the grid of each. Files that cannot be read or classified are
reported and skipped.

Examples:
  # Scan the six face photos of a cube
  cube-scanner scan ./faces

  # Scan with 8 workers and a calibrated palette, JSON output
  cube-scanner scan --workers 8 --palette palette.yaml --json ./faces`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	addCaptureFlags(scanCmd)
	scanCmd.Flags().Int("workers", 0, "Number of parallel workers (default CUBE_WORKERS)")
	scanCmd.Flags().Bool("json", false, "Output as JSON")
}

// scanFileReport is the JSON output for one scanned file.
type scanFileReport struct {
	File   string         `json:"file"`
	Labels []cube.Label   `json:"labels,omitempty"`
	Cells  *facegrid.Grid `json:"cells,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := args[0]
	jsonOutput := mustGetBool(cmd, "json")
	workers := mustGetInt(cmd, "workers")

	cfg := config.Load()
	if workers <= 0 {
		workers = cfg.Scan.Workers
	}

	c, err := loadClassifier(cmd, cfg)
	if err != nil {
		return err
	}

	paths, err := scanner.Collect(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found in %s", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := scanner.New(c, captureOptions(cmd, cfg))
	opts := scanner.ScanOptions{Concurrency: workers, OnProgress: logScanProgress}
	if !jsonOutput {
		opts.Progress = os.Stderr
	}
	result := s.Scan(ctx, paths, opts)

	if jsonOutput {
		reports := make([]scanFileReport, len(result.Files))
		for i, f := range result.Files {
			reports[i] = scanFileReport{File: f.Path}
			if f.Err != nil {
				reports[i].Error = f.Err.Error()
				continue
			}
			grid := f.Grid
			reports[i].Labels = grid.Labels()
			reports[i].Cells = &grid
		}
		if err := outputJSON(reports); err != nil {
			return err
		}
	} else {
		fmt.Println()
		for _, f := range result.Files {
			fmt.Printf("%s\n", f.Path)
			if f.Err != nil {
				fmt.Printf("  error: %v\n\n", f.Err)
				continue
			}
			fmt.Println(indent(f.Grid.String()))
		}
		fmt.Printf("Scanned %d faces: %d ok, %d failed\n", len(result.Files), result.Succeeded, result.Failed)
	}

	if ctx.Err() != nil {
		return errors.New("scan interrupted")
	}
	if result.Succeeded == 0 {
		return errors.New("no face could be classified")
	}
	return nil
}

// logScanProgress logs every finished file at debug level (enabled by --verbose).
func logScanProgress(info scanner.ProgressInfo) {
	logrus.WithFields(logrus.Fields{
		"file":  info.Path,
		"done":  info.Current,
		"total": info.Total,
	}).Debug("face scanned")
}

// indent prefixes every line of a grid with two spaces.
func indent(s string) string {
	out := make([]byte, 0, len(s)+32)
	lineStart := true
	for i := 0; i < len(s); i++ {
		if lineStart {
			out = append(out, ' ', ' ')
		}
		out = append(out, s[i])
		lineStart = s[i] == '\n'
	}
	return string(out)
}
