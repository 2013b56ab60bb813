package main

import (
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bistroconsulting/bistro"
)

type serveOptions struct {
	watch bool
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the content file when it changes")

	return cmd
}

func runServe(cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}
	if opts.watch && cfg.ContentFile == "" {
		return newCommandError("start the content watcher", errors.New("no content file configured"),
			"Set content_file in bistro.yaml or BISTRO_CONTENT_FILE.")
	}

	app := bistro.New(cfg, bistro.Views{}, bistro.WithLogOutput(os.Stderr))
	if err := app.Init(); err != nil {
		return newCommandError("start bistro", err, "")
	}
	defer app.Close()

	admin := "disabled"
	if cfg.AdminEnabled() {
		admin = "/admin/"
	}
	printSummary(cmd.ErrOrStderr(), "Bistro", []field{
		{"url", cfg.URL},
		{"addr", cfg.Addr},
		{"database", cfg.DatabasePath},
		{"analytics", strconv.FormatBool(cfg.AnalyticsEnabled)},
		{"admin", admin},
		{"watch", strconv.FormatBool(opts.watch)},
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.watch {
		go func() {
			if err := app.Watch(ctx); err != nil {
				app.Log.Error().Err(err).Msg("content watcher stopped")
			}
		}()
	}
	return app.Start(ctx)
}

func loadConfig(rootFlags *rootFlags) (bistro.SiteConfig, error) {
	cfg, err := bistro.LoadConfig(rootFlags.configPath)
	if err != nil {
		return cfg, newCommandError("load configuration", err, "Check bistro.yaml and BISTRO_* environment variables.")
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	return cfg, nil
}
