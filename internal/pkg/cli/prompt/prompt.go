// Package prompt defines a capability interface for the user interaction,
// so the core logic stays testable without a real terminal.
package prompt

type Confirm struct {
	Label       string
	Description string
	Default     bool
}

type Question struct {
	Label       string
	Description string
	Default     string
	Hidden      bool
	Validator   func(val any) error
}

type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (result string, ok bool)
}

// ValueRequired can be used as a Question validator.
func ValueRequired(val any) error {
	str, ok := val.(string)
	if !ok || len(str) == 0 {
		return errValueRequired
	}
	return nil
}

var errValueRequired = valueRequiredError{}

type valueRequiredError struct{}

func (valueRequiredError) Error() string {
	return "value is required"
}
