package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/router"
	"github.com/codelane/coderoom/internal/screen"
	"github.com/codelane/coderoom/internal/ui/components"
	"github.com/codelane/coderoom/internal/ui/theme"
)

// WelcomeScreen is the first-run flow: it asks for the student's name,
// creates the profile, and hands off to the lesson map.
type WelcomeScreen struct {
	profilePath  string
	homeFactory  func(profile.Profile) screen.Screen
	input        components.TextInput
	errMsg       string
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by homeFactory once the profile exists.
func New(profilePath string, homeFactory func(profile.Profile) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		profilePath: profilePath,
		homeFactory: homeFactory,
		input:       components.NewTextInput("What's your name?", 40),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.errMsg = "Type your name first!"
			return w, nil
		}
		p, err := profile.Create(w.profilePath, name)
		if err != nil {
			w.errMsg = err.Error()
			return w, nil
		}
		return w, w.transition(*p)
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) transition(p profile.Profile) tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Your coding classroom, in the terminal.")
	sections = append(sections, tagline)
	sections = append(sections, "")
	sections = append(sections, w.input.View())

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	sections = append(sections, "")
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press Enter to start learning")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
