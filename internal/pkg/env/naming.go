package env

import (
	"strings"

	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

const Prefix = "CRATEGEN_"

type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// Replace converts flag name to ENV variable name,
// for example "part-table" -> "CRATEGEN_PART_TABLE".
func (*NamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(errors.New("flag name cannot be empty"))
	}

	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func Files() []string {
	return []string{
		".env.local",
		".env",
	}
}
