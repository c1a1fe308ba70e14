package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/poxel"
	"github.com/gogpu/poxel/internal/scene"
)

var (
	flagWorkers    int
	flagSubsamples int
	flagMixed      bool
)

var collideCmd = &cobra.Command{
	Use:   "collide <scene.yaml>",
	Short: "Report every colliding pair in a scene",
	Long: `Loads a scene file, builds a mask for every object and tests all
unordered pairs in parallel. Colliding pairs are printed one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollide,
}

func init() {
	collideCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "Parallel queries (0 = GOMAXPROCS)")
	collideCmd.Flags().IntVar(&flagSubsamples, "subsamples", poxel.DefaultMaxSubsamples, "Max per-axis subsamples per pixel")
	collideCmd.Flags().BoolVar(&flagMixed, "mixed", false, "Pixel-test images against polygon-only objects")
}

func runCollide(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	masks := make([]*poxel.Mask, len(s.Objects))
	transforms := make([]poxel.Matrix, len(s.Objects))
	for i, o := range s.Objects {
		if o.Threshold == 0 {
			o.Threshold = flagThreshold
		}
		masks[i], err = o.Mask(loadImage)
		if err != nil {
			return err
		}
		transforms[i] = o.Transform()
	}

	var pairs []poxel.Pair
	var names [][2]string
	for i := range masks {
		for j := i + 1; j < len(masks); j++ {
			pairs = append(pairs, poxel.Pair{A: masks[i], TA: transforms[i], B: masks[j], TB: transforms[j]})
			names = append(names, [2]string{s.Objects[i].Name, s.Objects[j].Name})
		}
	}

	detector := poxel.NewDetector(
		poxel.WithMaxSubsamples(flagSubsamples),
		poxel.WithMixedPixelTest(flagMixed),
	)
	hits, err := poxel.CollideAll(cmd.Context(), pairs,
		poxel.WithWorkers(flagWorkers),
		poxel.WithDetector(detector),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	n := 0
	for i, hit := range hits {
		if hit {
			fmt.Fprintf(out, "%s\t%s\n", names[i][0], names[i][1])
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(out, "No collisions.")
	}
	return nil
}
