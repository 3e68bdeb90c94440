// Package parttable loads the master table with the reference-manual
// and vendor links of every known device.
package parttable

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
	"github.com/hw-tools/crategen/internal/pkg/validator"
)

// FileName of the part table, by default it is expected
// in the parent directory of the binary.
const FileName = "device_part_table.yaml"

const fileDesc = "part table"

// DeviceRef is the documentation metadata of one device.
type DeviceRef struct {
	RM        string   `yaml:"rm" validate:"required"`
	RMURL     string   `yaml:"rm_url" validate:"required,url"`
	VendorURL string   `yaml:"url" validate:"required,url"`
	Members   []string `yaml:"members" validate:"required,min=1"`
}

// FamilyRefs maps a device name to its metadata.
type FamilyRefs map[string]DeviceRef

// Table maps a family prefix to the family devices.
// It is loaded once and read-only afterwards.
type Table map[string]FamilyRefs

// DefaultPath returns the fixed part table location relative to the binary.
func DefaultPath() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", errors.Errorf(`cannot resolve the default part table path: %w`, err)
	}
	return filepath.Join(filepath.Dir(executable), "..", FileName), nil
}

// Load the part table from the filesystem.
// A missing or malformed file is fatal, there is no partial-table fallback.
func Load(fs filesystem.Fs, path string) (Table, error) {
	file, err := fs.ReadFile(path, fileDesc)
	if err != nil {
		return nil, err
	}
	return parse(file)
}

// LoadFromOS loads the part table from an absolute OS path,
// the default location is outside the working directory.
func LoadFromOS(logger log.Logger, path string) (Table, error) {
	dir := filepath.Dir(path)
	fs, err := aferofs.NewLocalFs(logger, dir)
	if err != nil {
		return nil, err
	}
	return Load(fs, filepath.Base(path))
}

func parse(file *filesystem.File) (Table, error) {
	table := make(Table)
	if err := yaml.Unmarshal([]byte(file.Content), &table); err != nil {
		return nil, errors.PrefixErrorf(err, `%s "%s" is not valid`, fileDesc, file.Path)
	}

	if err := validator.Validate(table); err != nil {
		return nil, errors.PrefixErrorf(err, `%s "%s" is not valid`, fileDesc, file.Path)
	}

	return table, nil
}

// Family returns the metadata of all devices in the family.
func (t Table) Family(family string) (FamilyRefs, error) {
	refs, found := t[family]
	if !found {
		return nil, errors.Errorf(`family "%s" is missing in the part table`, family)
	}
	return refs, nil
}

// Device returns the metadata of one device.
func (t Table) Device(family, device string) (DeviceRef, error) {
	refs, err := t.Family(family)
	if err != nil {
		return DeviceRef{}, err
	}

	ref, found := refs[device]
	if !found {
		return DeviceRef{}, errors.Errorf(`device "%s" is missing in the part table of the family "%s"`, device, family)
	}
	return ref, nil
}
