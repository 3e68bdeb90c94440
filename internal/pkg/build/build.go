// nolint: gochecknoglobals
package build

// BuildVersion is replaced during the build by ldflags.
var BuildVersion = "dev"

// GitCommit is replaced during the build by ldflags.
var GitCommit = "-"

// BuildDate is replaced during the build by ldflags.
var BuildDate = "-"

const (
	// CrateVersion is the version written to every generated package manifest.
	CrateVersion = "0.9.0"
	// GeneratorVersion is the version of the external peripheral-access code
	// generator the scaffolded crates document and link to.
	GeneratorVersion = "0.16.1"
)
