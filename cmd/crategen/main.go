package main

import (
	"os"

	"github.com/hw-tools/crategen/internal/pkg/cli/cmd"
	"github.com/hw-tools/crategen/internal/pkg/cli/prompt/interactive"
	"github.com/hw-tools/crategen/internal/pkg/env"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs"
)

func main() {
	envs, err := env.FromOs()
	if err != nil {
		panic(err)
	}

	prompt := interactive.New(os.Stdin, os.Stdout, os.Stderr)
	root := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, prompt, envs, aferofs.NewLocalFs)
	os.Exit(root.Execute())
}
