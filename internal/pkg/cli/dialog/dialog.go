// Package dialog composes the prompts asked by the commands.
package dialog

import (
	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
)

type Dialogs struct {
	prompt.Prompt
}

func New(p prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: p}
}
