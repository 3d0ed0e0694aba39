package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/kozaktomas/cube-scanner/internal/calibration"
	"github.com/kozaktomas/cube-scanner/internal/constants"
	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Capture CaptureConfig
	Palette PaletteConfig
	Scan    ScanConfig
	Web     WebConfig
	Log     LogConfig
}

type CaptureConfig struct {
	ROISize   int // defaults to 300
	ScaleSize int // defaults to 0 (no rescale)
}

type PaletteConfig struct {
	Path string // YAML palette file from `calibrate`; built-in palette when empty
}

type ScanConfig struct {
	Workers int // defaults to 4
}

type WebConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	MaxUploadBytes int64
}

type LogConfig struct {
	Level string // logrus level name, defaults to info
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString returns the environment variable or the default when it is unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envList splits a comma-separated environment variable, dropping empty entries.
func envList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func Load() *Config {
	return &Config{
		Capture: CaptureConfig{
			ROISize:   envInt("CUBE_ROI_SIZE", constants.DefaultROISize),
			ScaleSize: envInt("CUBE_SCALE_SIZE", constants.DefaultScaleSize),
		},
		Palette: PaletteConfig{
			Path: os.Getenv("CUBE_PALETTE_PATH"),
		},
		Scan: ScanConfig{
			Workers: min(envInt("CUBE_WORKERS", constants.DefaultWorkers), constants.MaxWorkers),
		},
		Web: WebConfig{
			Host:           envString("WEB_HOST", "0.0.0.0"),
			Port:           envInt("WEB_PORT", 8080),
			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
			MaxUploadBytes: int64(envInt("WEB_MAX_UPLOAD_MB", constants.MaxUploadSize>>20)) << 20,
		},
		Log: LogConfig{
			Level: envString("CUBE_LOG_LEVEL", "info"),
		},
	}
}

// LoadPalette returns the configured palette file, or the built-in palette
// and weights when no file is configured.
func (c *PaletteConfig) LoadPalette() (cube.Palette, cube.Weights, error) {
	if c.Path == "" {
		return cube.DefaultPalette(), cube.DefaultWeights(), nil
	}
	return calibration.Load(c.Path)
}

// ApplyLogLevel sets the global logrus level. Unknown names keep the current level.
func (c *LogConfig) ApplyLogLevel() {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		logrus.WithField("level", c.Level).Warn("unknown log level, keeping default")
		return
	}
	logrus.SetLevel(level)
}
