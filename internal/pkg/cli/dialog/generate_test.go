package dialog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
)

type testPrompt struct {
	confirmAnswer bool
	asked         []*prompt.Confirm
	printed       []string
}

func (p *testPrompt) IsInteractive() bool { return true }

func (p *testPrompt) Printf(format string, a ...any) {
	p.printed = append(p.printed, fmt.Sprintf(format, a...))
}

func (p *testPrompt) Confirm(c *prompt.Confirm) bool {
	p.asked = append(p.asked, c)
	return p.confirmAnswer
}

func (p *testPrompt) Ask(q *prompt.Question) (string, bool) {
	return q.Default, true
}

func TestAskGenerateCrates_Confirmed(t *testing.T) {
	t.Parallel()
	p := &testPrompt{confirmAnswer: true}
	dialogs := New(p)

	assert.True(t, dialogs.AskGenerateCrates([]string{"stm32f1/", "stm32f4/"}))
	assert.Len(t, p.asked, 1)
	assert.Equal(t, "Generate crates for 2 families?", p.asked[0].Label)
	assert.False(t, p.asked[0].Default)
	assert.Contains(t, p.printed, "  stm32f1/, stm32f4/")
}

func TestAskGenerateCrates_Declined(t *testing.T) {
	t.Parallel()
	p := &testPrompt{confirmAnswer: false}
	dialogs := New(p)
	assert.False(t, dialogs.AskGenerateCrates([]string{"stm32f1/"}))
}

func TestAskGenerateCrates_EmptyList(t *testing.T) {
	t.Parallel()
	p := &testPrompt{confirmAnswer: false}
	dialogs := New(p)

	// Nothing to generate, no confirmation needed
	assert.True(t, dialogs.AskGenerateCrates(nil))
	assert.Empty(t, p.asked)
}
