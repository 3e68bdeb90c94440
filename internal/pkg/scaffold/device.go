// Package scaffold generates the packaging and documentation files
// for the device support crates, one crate per device family.
package scaffold

import (
	"slices"
	"sort"
	"strings"

	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
)

const (
	// FamilyPrefixLen is the fixed length of the family prefix
	// at the beginning of each device description file name.
	FamilyPrefixLen = 7
	// DescriptorExt is the extension of the device description files.
	DescriptorExt = ".yaml"
)

// DeviceDescriptor is the identity of one device,
// derived from the description file name only, the content is not inspected.
type DeviceDescriptor struct {
	Family string // lowercased family prefix, for example "stm32f1"
	Name   string // lowercased device identifier, for example "stm32f103"
}

// FamilyGroup maps a family prefix to the devices collected for it.
type FamilyGroup map[string][]string

// Families returns the family prefixes sorted,
// the directory listing order is not stable across platforms.
func (g FamilyGroup) Families() []string {
	families := make([]string, 0, len(g))
	for family := range g {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// Devices returns the sorted, de-duplicated device names of the family.
func (g FamilyGroup) Devices(family string) []string {
	devices := make([]string, len(g[family]))
	copy(devices, g[family])
	sort.Strings(devices)
	return devices
}

// ParseDescriptorPath derives the device identity from the file name.
func ParseDescriptorPath(path string) (DeviceDescriptor, bool) {
	if !strings.EqualFold(filesystem.Ext(path), DescriptorExt) {
		return DeviceDescriptor{}, false
	}

	stem := filesystem.Stem(path)
	if len(stem) < FamilyPrefixLen {
		return DeviceDescriptor{}, false
	}

	return DeviceDescriptor{
		Family: strings.ToLower(stem[:FamilyPrefixLen]),
		Name:   strings.ToLower(stem),
	}, true
}

// CollectDevices groups the device description files by the family prefix.
// A missing directory or no matching files is not an error, the group is empty.
func CollectDevices(fs filesystem.Fs, logger log.Logger, dir string) (FamilyGroup, error) {
	matches, err := fs.Glob(filesystem.Join(dir, "*"+DescriptorExt))
	if err != nil {
		return nil, err
	}

	group := make(FamilyGroup)
	for _, path := range matches {
		descriptor, ok := ParseDescriptorPath(path)
		if !ok {
			logger.Debugf(`Skipped "%s", the name is not a device descriptor`, path)
			continue
		}

		if !slices.Contains(group[descriptor.Family], descriptor.Name) {
			group[descriptor.Family] = append(group[descriptor.Family], descriptor.Name)
		}
	}

	return group, nil
}
