package dialog

import (
	"fmt"
	"strings"

	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
)

// AskGenerateCrates lists the crate directories that will be created or updated
// and asks for a confirmation. Existing scaffold files are overwritten without
// further per-file prompts, so a non-confirmation means no output at all.
func (p *Dialogs) AskGenerateCrates(dirs []string) bool {
	if len(dirs) == 0 {
		return true
	}

	p.Printf("Going to create/update the following directories:")
	p.Printf("  %s", strings.Join(dirs, ", "))

	return p.Confirm(&prompt.Confirm{
		Label:       fmt.Sprintf("Generate crates for %d families?", len(dirs)),
		Description: "All scaffold files in the listed directories will be overwritten.",
		Default:     false,
	})
}
