package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/router"
	"github.com/codelane/coderoom/internal/screen"
	lessonscreen "github.com/codelane/coderoom/internal/screens/lesson"
	"github.com/codelane/coderoom/internal/session"
	"github.com/codelane/coderoom/internal/store"
	"github.com/codelane/coderoom/internal/ui/layout"
	"github.com/codelane/coderoom/internal/ui/theme"
)

// Deps carries everything the lesson map needs to open a session.
type Deps struct {
	Units       store.UnitRepo
	Submissions store.SubmissionRepo
	Gateway     *grader.Gateway
	Student     profile.Profile
}

// row is one selectable line of the flattened unit/lesson list.
type row struct {
	unit        curriculum.Unit
	lessonIndex int // -1 for unit header rows
}

// HomeScreen is the lesson map: every unit with its lessons, lock badges,
// and submission status, re-evaluated on each load.
type HomeScreen struct {
	deps     Deps
	rows     []row
	statuses map[uuid.UUID]curriculum.SubmissionStatus
	cursor   int
	loaded   bool
	errMsg   string
	notice   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

type mapLoadedMsg struct {
	units    []curriculum.Unit
	statuses map[uuid.UUID]curriculum.SubmissionStatus
	err      error
}

// New creates the lesson map screen.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadMap()
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadMap fetches units and the student's statuses. Lock state is derived
// at render time, never cached, because availableAt gates can open while
// the app is running.
func (h *HomeScreen) loadMap() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		units, err := h.deps.Units.List(ctx)
		if err != nil {
			return mapLoadedMsg{err: err}
		}
		statuses, err := h.deps.Submissions.StatusesByLesson(ctx, h.deps.Student.ID)
		if err != nil {
			return mapLoadedMsg{err: err}
		}
		return mapLoadedMsg{units: units, statuses: statuses}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mapLoadedMsg:
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.statuses = msg.statuses
		h.rows = flatten(msg.units)
		h.loaded = true
		if h.cursor >= len(h.rows) {
			h.cursor = 0
		}
		h.moveToLesson(+1)
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !h.loaded {
		return h, nil
	}
	h.notice = ""

	switch msg.String() {
	case "up", "k":
		h.cursor--
		h.moveToLesson(-1)
	case "down", "j":
		h.cursor++
		h.moveToLesson(+1)
	case "enter":
		return h.openSelected()
	}
	return h, nil
}

// moveToLesson clamps the cursor and skips unit header rows in the given
// direction.
func (h *HomeScreen) moveToLesson(dir int) {
	if len(h.rows) == 0 {
		return
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
	if h.cursor >= len(h.rows) {
		h.cursor = len(h.rows) - 1
	}
	for h.cursor >= 0 && h.cursor < len(h.rows) && h.rows[h.cursor].lessonIndex < 0 {
		h.cursor += dir
	}
	if h.cursor < 0 {
		h.cursor = 0
		h.moveToLesson(+1)
	}
	if h.cursor >= len(h.rows) {
		h.cursor = len(h.rows) - 1
		h.moveToLesson(-1)
	}
}

func (h *HomeScreen) openSelected() (screen.Screen, tea.Cmd) {
	if h.cursor < 0 || h.cursor >= len(h.rows) {
		return h, nil
	}
	r := h.rows[h.cursor]
	if r.lessonIndex < 0 {
		return h, nil
	}

	if now := time.Now(); curriculum.Locked(r.unit, r.lessonIndex, h.statuses, now) {
		h.notice = lockNotice(r.unit, now)
		return h, nil
	}

	lesson := r.unit.Lessons[r.lessonIndex]
	ctrl := session.New(r.unit, lesson, h.deps.Student.ID, h.deps.Submissions, h.deps.Gateway)
	return h, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: lessonscreen.New(ctrl),
		}
	}
}

// lockNotice explains why the selected lesson cannot be opened, in the
// same order the lock rules apply.
func lockNotice(u curriculum.Unit, now time.Time) string {
	switch {
	case u.IsLocked:
		return "This unit is locked by your teacher."
	case u.AvailableAt != nil && now.Before(*u.AvailableAt):
		return fmt.Sprintf("This unit opens %s.", u.AvailableAt.Local().Format("Jan 2 15:04"))
	default:
		return "This lesson is locked. Finish the previous one first!"
	}
}

func flatten(units []curriculum.Unit) []row {
	var rows []row
	for _, u := range units {
		rows = append(rows, row{unit: u, lessonIndex: -1})
		for i := range u.Lessons {
			rows = append(rows, row{unit: u, lessonIndex: i})
		}
	}
	return rows
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load lessons: " + h.errMsg)
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading your lessons...")
	}
	if len(h.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo lessons imported yet.\nAsk your teacher, or run: coderoom import <file>")
	}

	now := time.Now()
	var b strings.Builder
	b.WriteString("\n")

	for i, r := range h.rows {
		if r.lessonIndex < 0 {
			b.WriteString(h.renderUnitHeader(r.unit, width))
			continue
		}
		b.WriteString(h.renderLessonRow(r, i == h.cursor, now))
	}

	if h.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(h.notice))
	}

	return b.String()
}

func (h *HomeScreen) renderUnitHeader(u curriculum.Unit, width int) string {
	name := u.Name
	if u.AvailableAt != nil && time.Now().Before(*u.AvailableAt) {
		name += fmt.Sprintf("  (opens %s)", u.AvailableAt.Local().Format("Jan 2 15:04"))
	} else if u.IsLocked {
		name += "  (locked)"
	}
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + name)
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render("  " + strings.Repeat("─", max(width-6, 0)))
	return "\n" + header + "\n" + rule + "\n"
}

func (h *HomeScreen) renderLessonRow(r row, selected bool, now time.Time) string {
	lesson := r.unit.Lessons[r.lessonIndex]
	locked := curriculum.Locked(r.unit, r.lessonIndex, h.statuses, now)

	badge := "  "
	switch h.statuses[lesson.ID] {
	case curriculum.StatusGraded:
		badge = lipgloss.NewStyle().Foreground(theme.Success).Render("★ ")
	case curriculum.StatusSubmitted:
		badge = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
	case curriculum.StatusDraft:
		badge = lipgloss.NewStyle().Foreground(theme.Accent).Render("● ")
	}

	label := lesson.Title
	if lesson.Type == curriculum.TypeAssignment {
		label += "  [assignment]"
	}

	prefix := "    "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case locked:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
		label = "🔒 " + label
	case selected:
		prefix = "  ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	if selected && locked {
		prefix = "  ▸ "
	}

	return prefix + badge + style.Render(label) + "\n"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
