package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kozaktomas/cube-scanner/internal/config"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the active palette and weights",
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().Bool("json", false, "Output as JSON")
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	c, err := loadClassifier(cmd, cfg)
	if err != nil {
		return err
	}

	if mustGetBool(cmd, "json") {
		return outputJSON(map[string]any{
			"weights": c.Weights(),
			"colors":  c.Palette(),
		})
	}

	w := c.Weights()
	fmt.Printf("Weights: hue=%.2f saturation=%.2f value=%.2f\n\n", w.Hue, w.Saturation, w.Value)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tH\tS\tV")
	for _, ref := range c.Palette() {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\n", ref.Label, ref.Color.H, ref.Color.S, ref.Color.V)
	}
	return tw.Flush()
}
