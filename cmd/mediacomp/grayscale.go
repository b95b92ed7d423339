package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var grayscaleCmd = &cobra.Command{
	Use:   "grayscale [input] [output]",
	Short: "Convert to grayscale by channel average",
	Args:  cobra.ExactArgs(2),
	RunE:  runGrayscale,
}

func init() {
	rootCmd.AddCommand(grayscaleCmd)
}

func runGrayscale(cmd *cobra.Command, args []string) error {
	pic, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}

	out := pic.Map(func(pi mediacomp.PixelInfo) mediacomp.Color {
		v := (int(pi.R) + int(pi.G) + int(pi.B)) / 3
		return mediacomp.NewColor(v, v, v)
	})

	if err := out.Save(args[1]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", args[1], out.Width(), out.Height())
	return nil
}
