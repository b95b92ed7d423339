package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var differenceCmd = &cobra.Command{
	Use:   "difference [a] [b] [output]",
	Short: "Write a gray image of the per-pixel color distance between two images",
	Args:  cobra.ExactArgs(3),
	RunE:  runDifference,
}

func init() {
	differenceCmd.Flags().Float64("scale", 1.0, "Multiplier applied to each distance value")
	rootCmd.AddCommand(differenceCmd)
}

func runDifference(cmd *cobra.Command, args []string) error {
	scale, _ := cmd.Flags().GetFloat64("scale")

	a, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}
	b, err := mediacomp.Open(args[1])
	if err != nil {
		return err
	}

	out := a.Difference(b, scale)
	if err := out.Save(args[2]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", args[2], out.Width(), out.Height())
	return nil
}
