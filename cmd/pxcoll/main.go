// pxcoll runs pixel-perfect collision queries from the command line.
//
// Usage:
//
//	pxcoll collide <scene.yaml>   - Report every colliding pair of a scene
//	pxcoll hull <image>           - Print the convex hull of an image mask
//
// Global flags:
//
//	--threshold <alpha>  - Alpha threshold for image masks (default: 128)
//	--verbose            - Log pruning and sampling decisions
package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/poxel"
)

var (
	// Global flags
	flagThreshold uint8
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pxcoll",
	Short: "pxcoll - Pixel-perfect collision queries",
	Long: `pxcoll evaluates narrow-phase collision queries between objects
described by convex polygons or alpha-masked images.

Available commands:
  collide  - Report every colliding pair in a scene file
  hull     - Print (and optionally rasterize) the hull of an image mask

Examples:
  pxcoll collide scene.yaml
  pxcoll collide --workers 4 --verbose scene.yaml
  pxcoll hull --threshold 64 sprite.png
  pxcoll hull --out hull.png sprite.bmp`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint8Var(&flagThreshold, "threshold", 128, "Alpha threshold for image masks (1-255)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log pruning and sampling decisions")

	// Add subcommands
	rootCmd.AddCommand(collideCmd)
	rootCmd.AddCommand(hullCmd)
}

// setupLogging routes the library's slog output through a charm logger.
func setupLogging() {
	level := charmlog.WarnLevel
	if flagVerbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "pxcoll",
		Level:           level,
	})
	poxel.SetLogger(slog.New(logger))
}
