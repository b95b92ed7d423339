package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize [input] [output]",
	Short: "Resample an image to new dimensions",
	Args:  cobra.ExactArgs(2),
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().IntP("width", "w", 0, "Target width in pixels")
	resizeCmd.Flags().Int("height", 0, "Target height in pixels")
	resizeCmd.MarkFlagRequired("width")
	resizeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	pic, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}

	out := pic.Resize(width, height)
	if err := out.Save(args[1]); err != nil {
		return err
	}
	fmt.Printf("Resized %dx%d -> %dx%d\n", pic.Width(), pic.Height(), out.Width(), out.Height())
	return nil
}
