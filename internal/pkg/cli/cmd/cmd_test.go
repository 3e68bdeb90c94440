package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hw-tools/crategen/internal/pkg/cli/prompt/nop"
	"github.com/hw-tools/crategen/internal/pkg/env"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/ioutil"
	"github.com/hw-tools/crategen/internal/pkg/version"
)

const testTableYaml = `
stm32f1:
  stm32f103:
    rm: RM0008
    rm_url: https://example.com/rm0008.pdf
    url: https://example.com/stm32f103
    members:
      - STM32F103C8
`

func newTestRootCommand(t *testing.T) (*RootCommand, filesystem.Fs, *ioutil.AtomicWriter, *ioutil.AtomicWriter) {
	t.Helper()
	fs, err := aferofs.NewMemoryFs(log.NewNopLogger(), "")
	require.NoError(t, err)

	in := strings.NewReader("")
	out := ioutil.NewAtomicWriter()
	errOut := ioutil.NewAtomicWriter()

	fsFactory := func(logger log.Logger, workingDir string) (filesystem.Fs, error) {
		return fs, nil
	}

	root := NewRootCommand(in, out, errOut, nop.New(), env.Empty(), fsFactory)
	return root, fs, out, errOut
}

func TestRootCmdFlags(t *testing.T) {
	t.Parallel()
	root, _, _, _ := newTestRootCommand(t)

	// Map flags to names
	var names []string
	root.Cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		names = append(names, flag.Name)
	})

	// Assert
	expected := []string{
		"assume-yes",
		"help",
		"log-file",
		"part-table",
		"verbose",
		"version",
		"working-dir",
	}
	assert.Equal(t, expected, names)
}

func TestExecute_Version(t *testing.T) {
	t.Parallel()
	root, _, out, _ := newTestRootCommand(t)

	root.SetArgs([]string{"--version"})
	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), version.Version())
}

func TestExecute_MissingArgument(t *testing.T) {
	t.Parallel()
	root, _, _, errOut := newTestRootCommand(t)

	root.SetArgs([]string{})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, errOut.String(), "accepts 1 arg(s), received 0")
}

func TestExecute_Generate(t *testing.T) {
	t.Parallel()
	root, fs, out, _ := newTestRootCommand(t)

	require.NoError(t, fs.WriteFile(filesystem.NewFile("table.yaml", testTableYaml)))
	require.NoError(t, fs.WriteFile(filesystem.NewFile("devices/STM32F103.yaml", "device: {}")))

	root.SetArgs([]string{"devices", "--part-table", "table.yaml", "--assume-yes"})
	assert.Equal(t, 0, root.Execute())

	assert.True(t, fs.IsFile("stm32f1/Cargo.toml"))
	assert.True(t, fs.IsFile("stm32f1/src/lib.rs"))
	assert.Contains(t, out.String(), "Generated 1 crates.")
}

func TestExecute_MissingPartTable(t *testing.T) {
	t.Parallel()
	root, fs, _, errOut := newTestRootCommand(t)

	require.NoError(t, fs.WriteFile(filesystem.NewFile("devices/STM32F103.yaml", "device: {}")))

	root.SetArgs([]string{"devices", "--part-table", "table.yaml", "--assume-yes"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "cannot read")
}
