package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var negativeCmd = &cobra.Command{
	Use:   "negative [input] [output]",
	Short: "Invert every pixel",
	Args:  cobra.ExactArgs(2),
	RunE:  runNegative,
}

func init() {
	rootCmd.AddCommand(negativeCmd)
}

func runNegative(cmd *cobra.Command, args []string) error {
	pic, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}

	out := pic.Map(func(pi mediacomp.PixelInfo) mediacomp.Color {
		return mediacomp.NewColor(255-int(pi.R), 255-int(pi.G), 255-int(pi.B))
	})

	if err := out.Save(args[1]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", args[1], out.Width(), out.Height())
	return nil
}
