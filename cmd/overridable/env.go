package main

import (
	"io"
	"log/slog"

	"github.com/vango-go/overridable/internal/config"
	"github.com/vango-go/overridable/internal/errors"
	"github.com/vango-go/overridable/internal/preview"
	"github.com/vango-go/overridable/pkg/devmode"
	"github.com/vango-go/overridable/pkg/overridable"
)

// env is what every command needs: the configuration and a store filled
// from its manifest.
type env struct {
	config *config.Config
	logger *slog.Logger
	store  *overridable.Store
	mode   *devmode.Mode
}

// loadEnv loads the configuration at path, or from the working directory
// when path is empty. A missing file in the working directory means
// defaults; a missing explicit path is an error.
func loadEnv(path string, logOut io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
		if errors.HasCode(err, errors.CodeConfigNotFound) {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))
	store := overridable.NewStore(overridable.WithLogger(logger.With("component", "overridable_store")))
	if err := cfg.Apply(store, preview.DefaultCatalog()); err != nil {
		return nil, err
	}

	mode := devmode.New(devmode.WithLogger(logger))
	if cfg.DevMode {
		mode.Activate()
	}

	return &env{config: cfg, logger: logger, store: store, mode: mode}, nil
}
