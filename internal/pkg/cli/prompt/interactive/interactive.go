// Package interactive provides a Prompt implemented by the survey library.
package interactive

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
)

type Prompt struct {
	stdin       terminal.FileReader
	stdout      terminal.FileWriter
	stderr      io.Writer
	interactive bool
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *Prompt {
	return &Prompt{
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		interactive: isatty.IsTerminal(stdout.Fd()),
	}
}

func (p *Prompt) IsInteractive() bool {
	return p.interactive
}

func (p *Prompt) Printf(format string, a ...any) {
	fmt.Fprintf(p.stdout, format+"\n", a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	if !p.interactive {
		return c.Default
	}

	result := c.Default
	question := &survey.Confirm{
		Message: c.Label,
		Help:    c.Description,
		Default: c.Default,
	}
	if err := survey.AskOne(question, &result, p.stdio()); err != nil {
		p.handleError(err)
		return false
	}
	return result
}

func (p *Prompt) Ask(q *prompt.Question) (string, bool) {
	if !p.interactive {
		return q.Default, true
	}

	result := ""
	var question survey.Prompt
	if q.Hidden {
		question = &survey.Password{Message: q.Label, Help: q.Description}
	} else {
		question = &survey.Input{Message: q.Label, Help: q.Description, Default: q.Default}
	}

	var opts []survey.AskOpt
	opts = append(opts, p.stdio())
	if q.Validator != nil {
		opts = append(opts, survey.WithValidator(q.Validator))
	}

	if err := survey.AskOne(question, &result, opts...); err != nil {
		p.handleError(err)
		return "", false
	}
	return result, true
}

func (p *Prompt) stdio() survey.AskOpt {
	return survey.WithStdio(p.stdin, p.stdout, p.stderr)
}

func (p *Prompt) handleError(err error) {
	if err == terminal.InterruptErr { // nolint: errorlint
		// Ctrl+c pressed
		fmt.Fprintln(p.stderr, "Aborted.")
		return
	}
	fmt.Fprintln(p.stderr, err.Error())
}
