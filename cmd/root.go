package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube-scanner",
	Short: "A CLI tool for reading puzzle cube face colors from images",
	Long: `Cube Scanner reads a photo of one cube face, splits it into a 3x3 grid
and labels every sticker as White, Yellow, Red, Blue, Orange or Green by
comparing its median HSV color against a calibrated palette.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("palette", "", "Palette YAML file (overrides CUBE_PALETTE_PATH)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log per-cell colors and candidates")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	cfg := config.Load()
	cfg.Log.ApplyLogLevel()
	if verbose, err := rootCmd.PersistentFlags().GetBool("verbose"); err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
