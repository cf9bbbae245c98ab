package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/router"
	"github.com/codelane/coderoom/internal/screen"
	"github.com/codelane/coderoom/internal/screens/home"
	"github.com/codelane/coderoom/internal/screens/welcome"
	"github.com/codelane/coderoom/internal/store"
	"github.com/codelane/coderoom/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Units       store.UnitRepo
	Submissions store.SubmissionRepo
	Gateway     *grader.Gateway
	Profile     *profile.Profile
	ProfilePath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	student string
	width   int
	height  int
}

// newAppModel creates the root model. A missing profile starts on the
// welcome screen; otherwise the lesson map opens directly.
func newAppModel(opts Options) *AppModel {
	m := &AppModel{}

	homeFactory := func(p profile.Profile) screen.Screen {
		m.student = p.Name
		return home.New(home.Deps{
			Units:       opts.Units,
			Submissions: opts.Submissions,
			Gateway:     opts.Gateway,
			Student:     p,
		})
	}

	var initial screen.Screen
	if opts.Profile != nil {
		initial = homeFactory(*opts.Profile)
	} else {
		initial = welcome.New(opts.ProfilePath, homeFactory)
	}

	m.router = router.New(initial)
	return m
}

func (m *AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.student, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
