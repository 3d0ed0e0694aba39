// Package scanner classifies batches of face images in parallel.
package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/classifier"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/facegrid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// imageExtensions lists the file types Collect picks up.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// Scanner classifies face images from disk with one classifier and capture setup.
type Scanner struct {
	classifier *classifier.Classifier
	capture    capture.Options
}

// ProgressInfo describes one finished file.
type ProgressInfo struct {
	Current int
	Total   int
	Path    string
}

// ScanOptions configures a batch scan.
type ScanOptions struct {
	Concurrency int                // Number of files classified in parallel
	Progress    io.Writer          // Progress bar output; nil disables the bar
	OnProgress  func(ProgressInfo) // Called after each file, from worker goroutines
}

// FileResult is the outcome for one image. Exactly one of Grid and Err is meaningful.
type FileResult struct {
	Path string
	Grid facegrid.Grid
	Err  error
}

// ScanResult holds per-file results in input order and the outcome counts.
type ScanResult struct {
	Files     []FileResult
	Succeeded int
	Failed    int
}

// New creates a scanner.
func New(c *classifier.Classifier, opts capture.Options) *Scanner {
	return &Scanner{classifier: c, capture: opts}
}

// Collect returns the image files in dir, sorted by name. Subdirectories are not visited.
func Collect(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(imageExtensions, ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// ClassifyFile loads one image and classifies its face.
func (s *Scanner) ClassifyFile(path string) (facegrid.Grid, error) {
	region, err := capture.LoadFace(path, s.capture)
	if err != nil {
		return facegrid.Grid{}, err
	}
	grid, err := facegrid.ClassifyFace(region, s.classifier)
	if err != nil {
		return facegrid.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Scan classifies every path. A failing file is recorded in its result and
// does not stop the others. Results keep the order of paths.
func (s *Scanner) Scan(ctx context.Context, paths []string, opts ScanOptions) *ScanResult {
	if len(paths) == 0 {
		return &ScanResult{Files: []FileResult{}}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = constants.DefaultWorkers
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription(fmt.Sprintf("Scanning faces (%d workers)", concurrency)),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("faces"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	results := make([]FileResult, len(paths))
	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var processed int
	var progressMu sync.Mutex

	reportProgress := func(path string) {
		progressMu.Lock()
		processed++
		current := processed
		_ = bar.Add(1)
		progressMu.Unlock()
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressInfo{Current: current, Total: len(paths), Path: path})
		}
	}

	for i := range paths {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx].Path = path
			if err := ctx.Err(); err != nil {
				results[idx].Err = err
				reportProgress(path)
				return
			}

			grid, err := s.ClassifyFile(path)
			if err != nil {
				logrus.WithField("file", path).WithError(err).Warn("failed to classify face")
				results[idx].Err = err
			} else {
				results[idx].Grid = grid
			}
			reportProgress(path)
		}(i, paths[i])
	}
	wg.Wait()
	_ = bar.Finish()

	out := &ScanResult{Files: results}
	for _, r := range results {
		if r.Err != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	return out
}
