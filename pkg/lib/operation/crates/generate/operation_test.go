package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hw-tools/crategen/internal/pkg/cli/dialog"
	"github.com/hw-tools/crategen/internal/pkg/cli/options"
	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/scaffold/parttable"
	"github.com/hw-tools/crategen/pkg/lib/operation/crates/generate"
)

const testTableYaml = `
stm32f1:
  stm32f103:
    rm: RM0008
    rm_url: https://example.com/rm0008.pdf
    url: https://example.com/stm32f103
    members:
      - STM32F103C8
  stm32f107:
    rm: RM0008
    rm_url: https://example.com/rm0008.pdf
    url: https://example.com/stm32f107
    members:
      - STM32F107VC
`

// confirmPrompt answers every confirmation with a fixed value.
type confirmPrompt struct {
	prompt.Prompt
	answer bool
	asked  bool
}

func (p *confirmPrompt) IsInteractive() bool            { return true }
func (p *confirmPrompt) Printf(_ string, _ ...any)      {}
func (p *confirmPrompt) Confirm(_ *prompt.Confirm) bool { p.asked = true; return p.answer }

type testDeps struct {
	logger  log.DebugLogger
	fs      filesystem.Fs
	dialogs *dialog.Dialogs
	options *options.Options
}

func (d *testDeps) Logger() log.Logger        { return d.logger }
func (d *testDeps) Fs() filesystem.Fs         { return d.fs }
func (d *testDeps) Dialogs() *dialog.Dialogs  { return d.dialogs }
func (d *testDeps) Options() *options.Options { return d.options }

func newTestDeps(t *testing.T, answer bool) *testDeps {
	t.Helper()
	logger := log.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger, "")
	require.NoError(t, err)
	return &testDeps{
		logger:  logger,
		fs:      fs,
		dialogs: dialog.New(&confirmPrompt{answer: answer}),
		options: options.New(),
	}
}

func writeInput(t *testing.T, fs filesystem.Fs, descriptors ...string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(filesystem.NewFile(parttable.FileName, testTableYaml)))
	for _, name := range descriptors {
		require.NoError(t, fs.WriteFile(filesystem.NewFile("devices/"+name, "device: {}")))
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, true)
	writeInput(t, d.fs, "STM32F103.yaml", "STM32F107.yaml")

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.NoError(t, err)

	for _, path := range []string{"stm32f1/Cargo.toml", "stm32f1/build.rs", "stm32f1/README.md", "stm32f1/src/lib.rs"} {
		assert.True(t, d.fs.IsFile(path), path)
	}

	manifest, err := d.fs.ReadFile("stm32f1/Cargo.toml", "")
	require.NoError(t, err)
	assert.Contains(t, manifest.Content, "stm32f103 = []\nstm32f107 = []")

	// Reading InfoMessages truncates the buffer, so read it only once.
	messages := d.logger.InfoMessages()
	assert.Contains(t, messages, `Generated crate "stm32f1" with 2 devices.`)
	assert.Contains(t, messages, "Generated 1 crates.")
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, true)
	require.NoError(t, d.fs.WriteFile(filesystem.NewFile(parttable.FileName, testTableYaml)))
	require.NoError(t, d.fs.Mkdir("devices"))

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.NoError(t, err)
	assert.Contains(t, d.logger.InfoMessages(), `No device description files found in "devices", nothing to generate.`)
}

func TestRun_NotConfirmed(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, false)
	writeInput(t, d.fs, "STM32F103.yaml")

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.Error(t, err)
	assert.Equal(t, "generation was not confirmed, nothing was written", err.Error())

	// No output directory was created.
	assert.False(t, d.fs.Exists("stm32f1"))
}

func TestRun_AssumeYes(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, false)
	d.options.Set(options.AssumeYesOpt, true)
	writeInput(t, d.fs, "STM32F103.yaml")

	p := &confirmPrompt{answer: false}
	d.dialogs = dialog.New(p)

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.NoError(t, err)
	assert.False(t, p.asked)
	assert.True(t, d.fs.IsFile("stm32f1/Cargo.toml"))
}

func TestRun_UnknownFamily(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, true)
	// The family prefix is not present in the doc features table.
	writeInput(t, d.fs, "STM32F103.yaml", "STM32X99.yaml")

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `family "stm32x9" is missing in the doc features table`)

	// The whole run aborts, files of the valid family are not written either.
	assert.False(t, d.fs.Exists("stm32f1"))
}

func TestRun_MissingPartTable(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, true)
	require.NoError(t, d.fs.WriteFile(filesystem.NewFile("devices/STM32F103.yaml", "device: {}")))

	err := generate.Run(generate.Options{DevicesDir: "devices", PartTablePath: parttable.FileName}, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read")
}
