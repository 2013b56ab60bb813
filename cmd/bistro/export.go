package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bistroconsulting/bistro"
)

type exportOptions struct {
	outDir string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "dist", "Output directory")

	return cmd
}

func runExport(cmd *cobra.Command, rootFlags *rootFlags, opts *exportOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	app := bistro.New(cfg, bistro.Views{}, bistro.WithLogOutput(cmd.ErrOrStderr()))
	files, err := app.Export(opts.outDir)
	if err != nil {
		return newCommandError("export the site", err, "Make sure the output directory is writable.")
	}

	printSummary(cmd.OutOrStdout(), "Site exported", []field{
		{"dir", opts.outDir},
		{"files", strconv.Itoa(len(files))},
		{"url", cfg.URL},
	})
	return nil
}
