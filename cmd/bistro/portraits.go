package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bistroconsulting/bistro"
)

func newPortraitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portraits <src> <dst>",
		Short: "Crop and resize testimonial portraits",
		Long: "Converts every JPEG, PNG or GIF in src into a 150x150 JPEG in dst.\n" +
			"Images are centre-cropped to a square first.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			portraits, err := bistro.ImportPortraits(args[0], args[1])
			out := cmd.OutOrStdout()
			for _, p := range portraits {
				fmt.Fprintf(out, "%s -> %s (%d bytes)\n", p.Source, p.Filename, p.Size)
			}
			if err != nil {
				return newCommandError("import portraits", err, "Only JPEG, PNG and GIF files are supported.")
			}
			printSummary(out, "Portraits imported", []field{
				{"dir", args[1]},
				{"count", strconv.Itoa(len(portraits))},
			})
			return nil
		},
	}
}
