package errors

import (
	"strings"
)

type mainErrorGetter interface {
	MainError() error
	WrappedErrors() []error
}

type wrappedErrorsGetter interface {
	WrappedErrors() []error
}

// Format converts the error to an operator-facing message.
// A MultiError with one item is reduced to the item itself,
// multiple items are formatted as a bullet list, nesting increases indent.
func Format(err error) string {
	w := &writer{}
	w.writeError(err, 0)
	return w.out.String()
}

type writer struct {
	out strings.Builder
}

func (w *writer) writeError(err error, level int) {
	switch v := err.(type) { // nolint: errorlint
	case mainErrorGetter:
		w.writeBullet(formatPrefix(v.MainError().Error()), level)
		for _, sub := range v.WrappedErrors() {
			w.newLine()
			w.writeError(sub, level+1)
		}
	case wrappedErrorsGetter:
		errs := v.WrappedErrors()
		if len(errs) == 1 {
			w.writeError(errs[0], level)
			return
		}
		for i, sub := range errs {
			if i > 0 {
				w.newLine()
			}
			w.writeError(sub, level)
		}
	default:
		w.writeBullet(err.Error(), level)
	}
}

func (w *writer) writeBullet(msg string, level int) {
	if level > 0 {
		w.out.WriteString(strings.Repeat("  ", level-1))
		w.out.WriteString("- ")
	}
	w.out.WriteString(msg)
}

func (w *writer) newLine() {
	w.out.WriteString("\n")
}

func formatPrefix(prefix string) string {
	return strings.TrimRight(prefix, ".,:") + ":"
}
