// Package dependencies provides the dependencies of the CLI commands.
package dependencies

import (
	"github.com/hw-tools/crategen/internal/pkg/cli/dialog"
	"github.com/hw-tools/crategen/internal/pkg/cli/options"
	"github.com/hw-tools/crategen/internal/pkg/env"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
)

type Container struct {
	envs    *env.Map
	fs      filesystem.Fs
	dialogs *dialog.Dialogs
	logger  log.Logger
	options *options.Options
}

func NewContainer(envs *env.Map, fs filesystem.Fs, dialogs *dialog.Dialogs, logger log.Logger, options *options.Options) *Container {
	return &Container{
		envs:    envs,
		fs:      fs,
		dialogs: dialogs,
		logger:  logger,
		options: options,
	}
}

func (c *Container) Envs() *env.Map {
	return c.envs
}

func (c *Container) Fs() filesystem.Fs {
	return c.fs
}

func (c *Container) Dialogs() *dialog.Dialogs {
	return c.dialogs
}

func (c *Container) Logger() log.Logger {
	return c.logger
}

func (c *Container) Options() *options.Options {
	return c.options
}
