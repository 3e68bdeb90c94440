package cmd

import (
	"bytes"
	"runtime/debug"
	"text/template"

	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

const panicTmpl = `
---------------------------------------------------
The crate generator had a problem and crashed.

{{ if .LogFile -}}
A log file has been generated at "{{.LogFile}}".

Please open an issue and include the log file as an attachment.
{{- else -}}
Please run the command again with the flag "--log-file <path>" to generate a log file.

Then please open an issue and include the log file as an attachment.
{{- end }}`

// processPanic logs the stack trace and prints an operator-facing message.
func processPanic(err any, logger log.Logger, logFilePath string) int {
	logger.Debugf("Unexpected panic: %s", err)
	logger.Debugf("Trace:\n" + string(debug.Stack()))
	logger.Info(panicMessage(logFilePath))
	return 1
}

func panicMessage(logFile string) string {
	tmpl, err := template.New("panicMsg").Parse(panicTmpl)
	if err != nil {
		panic(errors.Errorf("cannot parse panic template: %w", err))
	}

	var output bytes.Buffer
	err = tmpl.Execute(
		&output,
		struct{ LogFile string }{logFile},
	)
	if err != nil {
		panic(errors.Errorf("cannot render panic template: %w", err))
	}

	return output.String()
}
