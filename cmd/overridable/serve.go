package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-go/overridable/internal/errors"
	"github.com/vango-go/overridable/internal/preview"
	"github.com/vango-go/overridable/pkg/overridable"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		addr    string
		devMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

The demo page is rendered on every request with the overrides from the
manifest. POST /_overridable/devmode (or call __overridableDevMode() in the
browser console) to tag every region with its identifier.

Examples:
  overridable serve
  overridable serve --addr=:8080
  overridable serve --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr != "" {
				e.config.Addr = addr
			}
			if devMode {
				e.mode.Activate()
			}
			if e.config.Metrics {
				overridable.EnableMetrics()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := preview.New(preview.Options{
				Config: e.config,
				Store:  e.store,
				Mode:   e.mode,
				Logger: e.logger,
			})
			success(cmd.OutOrStdout(), "Serving preview on http://%s", e.config.Addr)
			info(cmd.OutOrStdout(), "%d overridden identifiers", e.store.Len())
			if err := srv.Start(ctx); err != nil {
				return errors.New(errors.CodeCLIServe).Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Start with dev mode active")

	return cmd
}
