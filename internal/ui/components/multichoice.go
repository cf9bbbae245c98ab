package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codelane/coderoom/internal/ui/theme"
)

// ChoiceOption is one lettered option of a multiple-choice step.
type ChoiceOption struct {
	Letter string
	Text   string
}

// MultiChoice is a lettered multiple-choice selector. It does not know the
// correct answer; grading happens elsewhere and the result is shown through
// MarkResult.
type MultiChoice struct {
	Question string
	Options  []ChoiceOption
	Selected int
	marked   bool
	correct  bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []ChoiceOption) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Letter keys jump straight to the
// matching option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		for i, opt := range m.Options {
			if len(key) == 1 && (key == opt.Letter || key == lowercase(opt.Letter)) {
				m.Selected = i
				break
			}
		}
	}
	m.marked = false

	return m, nil
}

// SelectedLetter returns the letter of the highlighted option, or "" when
// there are no options.
func (m MultiChoice) SelectedLetter() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected].Letter
}

// MarkResult colors the selected option by grading outcome.
func (m *MultiChoice) MarkResult(correct bool) {
	m.marked = true
	m.correct = correct
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Letter, opt.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			if m.marked {
				if m.correct {
					style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
				} else {
					style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
				}
			}
		}
		s += style.Render(line) + "\n"
	}

	return s
}

func lowercase(s string) string {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0] + 32)
	}
	return s
}
