package main

import (
	"fmt"

	"github.com/mediacomp/mediacomp"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Print image dimensions and corner colors",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	pic, err := mediacomp.Open(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Dimensions: %d x %d\n", pic.Width(), pic.Height())
	fmt.Printf("Top-left:     %s\n", pic.At(0, 0))
	fmt.Printf("Top-right:    %s\n", pic.At(pic.Width()-1, 0))
	fmt.Printf("Bottom-left:  %s\n", pic.At(0, pic.Height()-1))
	fmt.Printf("Bottom-right: %s\n", pic.At(pic.Width()-1, pic.Height()-1))

	return nil
}
