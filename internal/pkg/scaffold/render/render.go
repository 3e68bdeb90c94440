// Package render produces the four crate scaffold files.
// All renderers are pure functions, identical inputs produce byte-identical output.
package render

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/hw-tools/crategen/internal/pkg/build"
	"github.com/hw-tools/crategen/internal/pkg/scaffold/parttable"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

//go:embed template/*
var templates embed.FS

// Input is the context of one family crate.
type Input struct {
	Family      string               // lowercased family prefix, also the crate name
	Devices     []string             // collected devices, sorted
	DocFeatures []string             // documentation features of the family
	Refs        parttable.FamilyRefs // metadata of all family devices, for the readme table
}

// Artifacts are the rendered scaffold files of one family.
type Artifacts struct {
	Manifest    string // Cargo.toml
	BuildScript string // build.rs
	Readme      string // README.md
	LibEntry    string // src/lib.rs
}

// All renders the four scaffold files.
func All(in Input) (*Artifacts, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	manifest, err := Manifest(in)
	if err != nil {
		return nil, err
	}
	buildScript, err := BuildScript(in)
	if err != nil {
		return nil, err
	}
	readme, err := Readme(in)
	if err != nil {
		return nil, err
	}
	libEntry, err := LibEntry(in)
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Manifest:    manifest,
		BuildScript: buildScript,
		Readme:      readme,
		LibEntry:    libEntry,
	}, nil
}

func (in Input) validate() error {
	if in.Family == "" {
		return errors.New("family cannot be empty")
	}
	if len(in.Devices) == 0 {
		// A recognized family without devices cannot be rendered,
		// the collector never produces it.
		return errors.Errorf(`family "%s" has no devices`, in.Family)
	}
	return nil
}

// Manifest renders the package manifest, Cargo.toml.
func Manifest(in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	return renderTemplate("template/cargo.toml.tmpl", map[string]string{
		"Crate":        in.Family,
		"Family":       strings.ToUpper(in.Family),
		"Version":      build.CrateVersion,
		"DocsFeatures": docsFeatureList(in.DocFeatures),
		"Features":     deviceFeatures(in.Devices),
	})
}

// BuildScript renders build.rs with one branch per device, sorted,
// and a fatal fallback when no device feature is active.
func BuildScript(in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	return renderTemplate("template/build.rs.tmpl", map[string]string{
		"DeviceClauses": deviceClauses(in.Devices),
	})
}

// Readme renders README.md with the device coverage table.
func Readme(in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	return renderTemplate("template/readme.md.tmpl", map[string]string{
		"Crate":            in.Family,
		"Family":           strings.ToUpper(in.Family),
		"Version":          build.CrateVersion,
		"GeneratorVersion": build.GeneratorVersion,
		"FirstDevice":      sortedDevices(in.Devices)[0],
		"DeviceRows":       deviceRows(in.Refs),
	})
}

// LibEntry renders src/lib.rs with one conditional module per device, sorted.
func LibEntry(in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	return renderTemplate("template/lib.rs.tmpl", map[string]string{
		"Crate":            in.Family,
		"Family":           strings.ToUpper(in.Family),
		"GeneratorVersion": build.GeneratorVersion,
		"Mods":             deviceMods(in.Devices),
	})
}

func renderTemplate(path string, data any) (string, error) {
	content, err := templates.ReadFile(path)
	if err != nil {
		panic(err)
	}

	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		panic(err)
	}

	var buffer bytes.Buffer
	writer := bufio.NewWriter(&buffer)
	if err := tmpl.Execute(writer, data); err != nil {
		return "", errors.Errorf(`cannot render template "%s": %w`, path, err)
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

func sortedDevices(devices []string) []string {
	out := make([]string, len(devices))
	copy(out, devices)
	sort.Strings(out)
	return out
}

// docsFeatureList formats the docs metadata feature list, `['rt', 'stm32f103']`.
// TOML accepts single-quoted literal strings.
func docsFeatureList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf(`'%s'`, item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// deviceFeatures formats one empty feature flag per device, sorted.
func deviceFeatures(devices []string) string {
	var features []string
	for _, d := range sortedDevices(devices) {
		features = append(features, fmt.Sprintf("%s = []", d))
	}
	return strings.Join(features, "\n")
}

// deviceClauses formats the conditional chain selecting the linker description file.
func deviceClauses(devices []string) string {
	var clauses []string
	for _, d := range sortedDevices(devices) {
		clauses = append(clauses, fmt.Sprintf(
			"if env::var_os(\"CARGO_FEATURE_%s\").is_some() {\n            \"src/%s/device.x\"\n        }",
			strings.ToUpper(d), d,
		))
	}
	return strings.Join(clauses, " else ") + ` else { panic!("No device features selected"); }`
}

// deviceRows formats the readme coverage table, one row per device
// in the part table family, sorted lexicographically by the row text.
func deviceRows(refs parttable.FamilyRefs) string {
	rows := make([]string, 0, len(refs))
	for device, ref := range refs {
		links := fmt.Sprintf("[%s](%s), [st.com](%s)", ref.RM, ref.RMURL, ref.VendorURL)
		rows = append(rows, fmt.Sprintf("| %s | %s | %s |", device, strings.Join(ref.Members, ", "), links))
	}
	sort.Strings(rows)
	return strings.Join(rows, "\n")
}

// deviceMods formats one conditional module declaration per device, sorted.
func deviceMods(devices []string) string {
	var mods []string
	for _, d := range sortedDevices(devices) {
		mods = append(mods, fmt.Sprintf("#[cfg(feature = \"%s\")]\npub mod %s;\n", d, d))
	}
	return strings.Join(mods, "\n")
}
