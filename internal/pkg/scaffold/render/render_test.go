package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hw-tools/crategen/internal/pkg/scaffold/parttable"
)

func testInput() Input {
	return Input{
		Family:      "stm32f1",
		Devices:     []string{"stm32f107", "stm32f103"},
		DocFeatures: []string{"rt", "stm32f100", "stm32f101", "stm32f102", "stm32f103", "stm32f107"},
		Refs: parttable.FamilyRefs{
			"stm32f103": {
				RM:        "RM0008",
				RMURL:     "https://example.com/rm0008.pdf",
				VendorURL: "https://example.com/stm32f103",
				Members:   []string{"STM32F103C8", "STM32F103RB"},
			},
			"stm32f107": {
				RM:        "RM0008",
				RMURL:     "https://example.com/rm0008.pdf",
				VendorURL: "https://example.com/stm32f107",
				Members:   []string{"STM32F107VC"},
			},
		},
	}
}

func TestManifest(t *testing.T) {
	t.Parallel()
	out, err := Manifest(testInput())
	require.NoError(t, err)
	assert.Contains(t, out, `name = "stm32f1"`)
	assert.Contains(t, out, `version = "0.9.0"`)
	assert.Contains(t, out, `description = "Device support crates for STM32F1 devices"`)
	assert.Contains(t, out, `features = ['rt', 'stm32f100', 'stm32f101', 'stm32f102', 'stm32f103', 'stm32f107']`)
	assert.Contains(t, out, "rt = [\"cortex-m-rt/device\"]\nstm32f103 = []\nstm32f107 = []\n")
}

func TestBuildScript(t *testing.T) {
	t.Parallel()
	out, err := BuildScript(testInput())
	require.NoError(t, err)

	// One branch per device, sorted, with the fatal fallback.
	f103 := `if env::var_os("CARGO_FEATURE_STM32F103").is_some() {
            "src/stm32f103/device.x"
        }`
	f107 := `if env::var_os("CARGO_FEATURE_STM32F107").is_some() {
            "src/stm32f107/device.x"
        }`
	assert.Contains(t, out, f103+" else "+f107+` else { panic!("No device features selected"); }`)
	assert.Contains(t, out, `println!("cargo:rerun-if-changed=build.rs");`)
}

func TestReadme(t *testing.T) {
	t.Parallel()
	out, err := Readme(testInput())
	require.NoError(t, err)
	assert.Contains(t, out, "# stm32f1\n")
	assert.Contains(t, out, `features = ["stm32f103", "rt"]`)
	assert.Contains(t, out, "use stm32f1::stm32f103;")
	assert.Contains(t, out, "https://docs.rs/svd2rust/0.16.1/svd2rust/#peripheral-api")

	// Rows are sorted, one per part table entry.
	rows := "| stm32f103 | STM32F103C8, STM32F103RB | [RM0008](https://example.com/rm0008.pdf), [st.com](https://example.com/stm32f103) |\n" +
		"| stm32f107 | STM32F107VC | [RM0008](https://example.com/rm0008.pdf), [st.com](https://example.com/stm32f107) |"
	assert.Contains(t, out, "|:------:|:-------:|:-----:|\n"+rows)
}

func TestLibEntry(t *testing.T) {
	t.Parallel()
	out, err := LibEntry(testInput())
	require.NoError(t, err)
	assert.Contains(t, out, "//! Peripheral access API for STM32F1 microcontrollers")
	assert.Contains(t, out, "mod generic;\npub use self::generic::*;")
	assert.Contains(t, out, "#[cfg(feature = \"stm32f103\")]\npub mod stm32f103;\n\n#[cfg(feature = \"stm32f107\")]\npub mod stm32f107;\n")
}

func TestAll_Deterministic(t *testing.T) {
	t.Parallel()
	first, err := All(testInput())
	require.NoError(t, err)

	// Device order in the input must not matter.
	reversed := testInput()
	reversed.Devices = []string{"stm32f103", "stm32f107"}
	second, err := All(reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAll_InvalidInput(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Family = ""
	_, err := All(in)
	require.Error(t, err)
	assert.Equal(t, "family cannot be empty", err.Error())

	in = testInput()
	in.Devices = nil
	_, err = All(in)
	require.Error(t, err)
	assert.Equal(t, `family "stm32f1" has no devices`, err.Error())
}
