package main

import (
	"bytes"
	stderrors "errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-go/overridable/internal/errors"
	"github.com/vango-go/overridable/internal/preview"
	"github.com/vango-go/overridable/pkg/overridable"
)

func renderCmd(configPath *string) *cobra.Command {
	var (
		output  string
		devMode bool
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the preview page to a file or stdout",
		Long: `Render the demo page once with the overrides from the manifest.

Examples:
  overridable render
  overridable render -o page.html --dev`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if devMode {
				e.mode.Activate()
			}
			if pretty {
				e.config.Pretty = true
			}

			srv := preview.New(preview.Options{
				Config: e.config,
				Store:  e.store,
				Mode:   e.mode,
				Logger: e.logger,
			})
			defer srv.Stop()

			var buf bytes.Buffer
			if err := srv.RenderPage(cmd.Context(), &buf); err != nil {
				code := errors.CodeRenderMissingArg
				if stderrors.Is(err, overridable.ErrMultipleChildren) {
					code = errors.CodeRenderRegion
				}
				return errors.New(code).Wrap(err)
			}

			if output == "" || output == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return errors.New(errors.CodeCLIRender).Wrap(err)
			}
			success(cmd.OutOrStdout(), "Wrote %s (%d bytes)", output, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Render with dev-mode tags")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")

	return cmd
}
