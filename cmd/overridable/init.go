package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-go/overridable/internal/config"
	"github.com/vango-go/overridable/internal/errors"
	"github.com/vango-go/overridable/internal/preview"
)

func initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write overridable.toml (or overridable.json with --format=json) with
one example override for every built-in preset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch format {
			case "toml":
				path = config.TOMLFileName
			case "json":
				path = config.JSONFileName
			default:
				return errors.New(errors.CodeCLIArgs).
					WithDetail("--format must be toml or json, got " + format)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.CodeCLIArgs).
					WithDetail(path + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := starterConfig()
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "File format: toml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func starterConfig() *config.Config {
	cfg := config.New()
	cfg.Overrides = []config.OverrideSpec{
		{ID: preview.IDPageBanner, Preset: "text", Mode: config.ModeAdd, Params: map[string]any{"text": "Hello from the manifest"}},
		{ID: preview.IDCardHeader, Preset: "wrap", Mode: config.ModeAdd, Params: map[string]any{"class": "highlight"}},
		{ID: preview.IDCardFooter, Preset: "badge", Mode: config.ModeAppend},
		{ID: preview.IDCardFooter, Preset: "badge", Mode: config.ModeAppend, Params: map[string]any{"label": "new"}},
		// Not on the demo page; `overridable list` reports it as unused.
		{ID: "Page.sidebar", Preset: "hidden", Mode: config.ModeAdd},
	}
	return cfg
}
