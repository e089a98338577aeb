package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/thronelight/platform/internal/adapter/filestore"
	"github.com/thronelight/platform/internal/app"
	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/service/gathering"
)

// commandContext lazily loads configuration and connects infrastructure
// for the subcommand being run.
type commandContext struct {
	configPath string
	logLevel   string

	load func(path string) (*config.Config, error)
	cfg  *config.Config
}

func newCommandContext() *commandContext {
	return &commandContext{load: config.LoadFile}
}

func (c *commandContext) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) logger(cfg *config.Config) *slog.Logger {
	logCfg := cfg.Log
	if c.logLevel != "" {
		logCfg.Level = c.logLevel
	}
	return app.NewLogger(logCfg)
}

// withContainer runs fn against fully wired services and closes them after.
func (c *commandContext) withContainer(ctx context.Context, fn func(*app.Container) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	container, err := app.NewContainer(ctx, cfg, c.logger(cfg))
	if err != nil {
		return err
	}
	defer container.Close(ctx)
	return fn(container)
}

// gatherings needs only the JSON file store, not the database.
func (c *commandContext) gatherings() (*gathering.Service, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	return gathering.NewService(c.logger(cfg), filestore.NewGatheringStore(cfg.FileStore.GatheringsPath)), nil
}
