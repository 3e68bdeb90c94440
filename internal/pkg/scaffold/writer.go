package scaffold

import (
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/scaffold/render"
)

// File names of the generated scaffold, relative to the crate directory.
const (
	ManifestFile    = "Cargo.toml"
	BuildScriptFile = "build.rs"
	ReadmeFile      = "README.md"
	LibEntryFile    = "src/lib.rs"
)

// WriteCrate renders the crate scaffold and writes all four files.
// Existing files are overwritten, the generated scaffold is the source of truth.
func WriteCrate(fs filesystem.Fs, crate *Crate) error {
	artifacts, err := render.All(render.Input{
		Family:      crate.Family,
		Devices:     crate.Devices,
		DocFeatures: crate.DocFeatures,
		Refs:        crate.Refs,
	})
	if err != nil {
		return err
	}

	files := []*filesystem.File{
		filesystem.NewFile(filesystem.Join(crate.Family, ManifestFile), artifacts.Manifest).SetDescription("crate manifest"),
		filesystem.NewFile(filesystem.Join(crate.Family, BuildScriptFile), artifacts.BuildScript).SetDescription("build script"),
		filesystem.NewFile(filesystem.Join(crate.Family, ReadmeFile), artifacts.Readme).SetDescription("readme"),
		filesystem.NewFile(filesystem.Join(crate.Family, LibEntryFile), artifacts.LibEntry).SetDescription("library entrypoint"),
	}
	for _, file := range files {
		if err := fs.WriteFile(file); err != nil {
			return err
		}
	}

	return nil
}
