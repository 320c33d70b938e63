package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/optmap/internal/config"
	"github.com/specialistvlad/optmap/internal/ctxlog"
	"github.com/specialistvlad/optmap/internal/envsource"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	environ []string
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. environ supplies the environment overlay,
// normally os.Environ().
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, environ []string) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		environ: environ,
	}
}

// withLogger attaches the app's logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// LoadOptions loads every option file under paths and applies the
// environment overlay on top.
func (a *App) LoadOptions(ctx context.Context, paths ...string) (*config.Model, error) {
	ctx = a.withLogger(ctx)

	model, err := a.loader.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}

	env := envsource.Load(ctx, a.config.EnvPrefix, a.environ)
	if !env.IsEmpty() {
		model.Overlay(env)
		a.logger.Debug("Environment overlay applied.", "prefix", a.config.EnvPrefix, "options", env.Size())
	}

	a.logger.Info("Options loaded.", "paths", len(paths), "options", model.Options.Size())
	return model, nil
}
