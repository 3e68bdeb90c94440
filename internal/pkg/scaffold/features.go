package scaffold

import (
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

// docFeatures lists the features enabled for the documentation build of each family.
// The table is fixed, it is not derived from the input files.
// nolint: gochecknoglobals
var docFeatures = map[string][]string{
	"stm32f0": {"rt", "stm32f0x0", "stm32f0x1", "stm32f0x2", "stm32f0x8"},
	"stm32f1": {"rt", "stm32f100", "stm32f101", "stm32f102", "stm32f103", "stm32f107"},
	"stm32f2": {"rt", "stm32f215", "stm32f217"},
	"stm32f3": {"rt", "stm32f303", "stm32f373", "stm32f3x8"},
	"stm32f4": {"rt", "stm32f401", "stm32f407", "stm32f413", "stm32f469"},
	"stm32f7": {"rt", "stm32f7x3", "stm32f7x9"},
	"stm32h7": {"rt", "stm32h743", "stm32h743v", "stm32h747cm7"},
	"stm32l0": {"rt", "stm32l0x1", "stm32l0x2", "stm32l0x3"},
	"stm32l1": {"rt", "stm32l100", "stm32l151", "stm32l162"},
	"stm32l4": {"rt", "stm32l4x1", "stm32l4x5"},
	"stm32g0": {"rt", "stm32g07x", "stm32g030", "stm32g031", "stm32g041", "stm32g081"},
	"stm32g4": {"rt", "stm32g431", "stm32g441", "stm32g474", "stm32g484"},
}

// DocFeatures returns the documentation features of the family.
// A family missing in the table fails the whole run, not just the family.
func DocFeatures(family string) ([]string, error) {
	features, found := docFeatures[family]
	if !found {
		return nil, errors.Errorf(`family "%s" is missing in the doc features table`, family)
	}

	out := make([]string, len(features))
	copy(out, features)
	return out, nil
}
