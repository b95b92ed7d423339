package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var captionCmd = &cobra.Command{
	Use:   "caption [input] [output] [text]",
	Short: "Draw a text caption onto an image",
	Args:  cobra.ExactArgs(3),
	RunE:  runCaption,
}

func init() {
	captionCmd.Flags().IntP("x", "x", 10, "Left edge of the caption")
	captionCmd.Flags().IntP("y", "y", 10, "Top edge of the caption")
	captionCmd.Flags().String("font", "", "System font name to use instead of the built-in face")
	captionCmd.Flags().Float64("size", 16, "Point size when --font is set")
	rootCmd.AddCommand(captionCmd)
}

func runCaption(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	fontName, _ := cmd.Flags().GetString("font")
	size, _ := cmd.Flags().GetFloat64("size")

	pic, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}

	if fontName != "" {
		style, err := mediacomp.NewTextStyle(fontName, "", size)
		if err != nil {
			return err
		}
		pic.AddTextWithStyle(x, y, args[2], style, mediacomp.Black)
	} else {
		pic.AddText(x, y, args[2], mediacomp.Black)
	}

	if err := pic.Save(args[1]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", args[1])
	return nil
}
