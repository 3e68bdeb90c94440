// Package generate implements the crate scaffold generation,
// from the device description directory to the per-family output directories.
package generate

import (
	"path/filepath"

	"github.com/hw-tools/crategen/internal/pkg/cli/dialog"
	"github.com/hw-tools/crategen/internal/pkg/cli/options"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/scaffold"
	"github.com/hw-tools/crategen/internal/pkg/scaffold/parttable"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

type Options struct {
	DevicesDir    string // directory with the per-device description files
	PartTablePath string // path to the part table, may be absolute
}

type dependencies interface {
	Logger() log.Logger
	Fs() filesystem.Fs
	Dialogs() *dialog.Dialogs
	Options() *options.Options
}

func Run(o Options, d dependencies) error {
	logger := d.Logger()
	fs := d.Fs()

	group, err := scaffold.CollectDevices(fs, logger, o.DevicesDir)
	if err != nil {
		return err
	}

	table, err := loadPartTable(logger, fs, o.PartTablePath)
	if err != nil {
		return err
	}

	// All lookups are validated here, before any file is written.
	plan, err := scaffold.NewPlan(group, table)
	if err != nil {
		return err
	}

	if plan.Empty() {
		logger.Infof(`No device description files found in "%s", nothing to generate.`, o.DevicesDir)
		return nil
	}

	if !d.Options().GetBool(options.AssumeYesOpt) {
		if !d.Dialogs().AskGenerateCrates(plan.Dirs()) {
			return errors.New("generation was not confirmed, nothing was written")
		}
	}

	for _, crate := range plan.Crates {
		if err := scaffold.WriteCrate(fs, crate); err != nil {
			return err
		}
		logger.Infof(`Generated crate "%s" with %d devices.`, crate.Family, len(crate.Devices))
	}

	logger.Infof("Generated %d crates.", len(plan.Crates))
	return nil
}

// loadPartTable reads the part table either through the working dir
// filesystem, or directly from an absolute path, for example the default
// location next to the executable.
func loadPartTable(logger log.Logger, fs filesystem.Fs, path string) (parttable.Table, error) {
	if path == "" {
		defaultPath, err := parttable.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	if filepath.IsAbs(path) {
		return parttable.LoadFromOS(logger, path)
	}
	return parttable.Load(fs, path)
}
