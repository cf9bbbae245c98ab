package lesson

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/screen"
	"github.com/codelane/coderoom/internal/session"
	"github.com/codelane/coderoom/internal/step"
	"github.com/codelane/coderoom/internal/ui/components"
	"github.com/codelane/coderoom/internal/ui/layout"
)

// LessonScreen drives one lesson session: it renders the current step,
// routes input into the controller's buffers, and reacts to verdicts.
type LessonScreen struct {
	ctrl *session.Controller

	loaded   bool
	checking bool
	errMsg   string

	// feedback overlay after a verdict; dismissed by any key.
	showFeedback bool
	feedbackText string
	feedbackPass bool
	advanced     bool // verdict passed, next step must be set up on dismiss

	// per-step input widgets; which one is live depends on the step kind.
	input  components.TextInput
	editor textarea.Model
	mc     components.MultiChoice
	kind   step.Kind
	broken bool // current step failed to parse

	reviewing   bool
	reviewIndex int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.Closer = (*LessonScreen)(nil)

// New creates the lesson screen around an unloaded controller.
func New(ctrl *session.Controller) *LessonScreen {
	return &LessonScreen{ctrl: ctrl}
}

func (l *LessonScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return lessonLoadedMsg{err: l.ctrl.Load(context.Background())}
	}
}

func (l *LessonScreen) Title() string {
	return l.ctrl.Lesson().Title
}

// Close flushes the pending auto-save before the screen is discarded.
func (l *LessonScreen) Close() {
	_ = l.ctrl.Close(context.Background())
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	switch {
	case l.showFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case l.reviewing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Browse steps"},
			{Key: "Esc", Description: "Back to lesson"},
		}
	case l.ctrl.ReadOnly():
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case l.kind == step.KindCodeTask || l.kind == step.KindUntagged:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Check"},
			{Key: "Ctrl+O", Description: "Submit lesson"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Ctrl+O", Description: "Submit lesson"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		l.loaded = true
		l.setupStep()
		return l, nil

	case verdictMsg:
		return l.handleVerdict(msg)

	case submittedMsg:
		l.checking = false
		if msg.err != nil && !errors.Is(msg.err, session.ErrClosed) {
			l.errMsg = msg.err.Error()
		}
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l.forwardToInput(msg)
}

// setupStep prepares the input widget for the controller's current step.
func (l *LessonScreen) setupStep() {
	l.broken = false
	if l.ctrl.State() != session.StateInProgress || l.ctrl.CurrentStep() >= l.ctrl.StepCount() {
		l.input = components.NewTextInput("Type your reflection...", 0)
		return
	}

	s, err := l.ctrl.Step(l.ctrl.CurrentStep())
	if err != nil {
		l.broken = true
		return
	}
	l.kind = s.Kind

	switch s.Kind {
	case step.KindQuestion:
		l.input = components.NewTextInput("Type your answer...", 0)
	case step.KindChoice:
		opts := make([]components.ChoiceOption, 0, len(s.Choice.Options))
		for _, o := range s.Choice.Options {
			opts = append(opts, components.ChoiceOption{Letter: o.Letter, Text: o.Text})
		}
		l.mc = components.NewMultiChoice(s.Choice.Question, opts)
	case step.KindCodeTask, step.KindUntagged:
		l.editor = textarea.New()
		l.editor.SetValue(l.ctrl.Code())
		l.editor.Focus()
	}
}

func (l *LessonScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	l.checking = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, session.ErrClosed):
			// Stale verdict from before navigation; drop it.
			return l, nil
		case errors.Is(msg.err, grader.ErrNoVerdict):
			// Retryable: no advance, no silent pass.
			l.showFeedback = true
			l.feedbackPass = false
			l.feedbackText = "Hmm, I couldn't check that right now. Try again!"
			return l, nil
		default:
			l.errMsg = msg.err.Error()
			return l, nil
		}
	}

	switch msg.result.Outcome {
	case session.OutcomePassed:
		l.showFeedback = true
		l.feedbackPass = true
		l.feedbackText = msg.result.Message
		l.advanced = true
	case session.OutcomeFailed, session.OutcomeRefused:
		l.showFeedback = true
		l.feedbackPass = false
		l.feedbackText = msg.result.Message
		if l.kind == step.KindChoice {
			l.mc.MarkResult(false)
		}
	case session.OutcomeAwaitingReflection:
		l.input = components.NewTextInput("Type your reflection...", 0)
	case session.OutcomeSubmitted:
		// View switches to the submitted recap.
	}
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.errMsg != "" {
		l.errMsg = ""
		return l, nil
	}
	if !l.loaded || l.checking {
		return l, nil
	}

	// Feedback overlay: any key dismisses; a passed step moves on.
	if l.showFeedback {
		l.showFeedback = false
		if l.advanced {
			l.advanced = false
			l.setupStep()
		}
		return l, nil
	}

	if l.reviewing {
		return l.handleReviewKey(key)
	}

	if l.ctrl.ReadOnly() {
		if key == "up" || key == "down" {
			l.reviewing = true
			l.reviewIndex = 0
		}
		return l, nil
	}

	switch key {
	case "ctrl+r":
		if l.ctrl.CurrentStep() > 0 {
			l.reviewing = true
			l.reviewIndex = l.ctrl.CurrentStep() - 1
		}
		return l, nil

	case "ctrl+o":
		return l.submit()

	case "ctrl+s":
		if l.kind == step.KindCodeTask || l.kind == step.KindUntagged {
			return l.advance()
		}
		return l, nil

	case "enter":
		if l.kind != step.KindCodeTask && l.kind != step.KindUntagged {
			return l.advance()
		}
		// Enter is a newline inside the editor.
	}

	return l.forwardToInput(msg)
}

func (l *LessonScreen) handleReviewKey(key string) (screen.Screen, tea.Cmd) {
	limit := l.ctrl.CurrentStep()
	if l.ctrl.ReadOnly() {
		limit = l.ctrl.StepCount()
	}
	switch key {
	case "up", "k":
		if l.reviewIndex > 0 {
			l.reviewIndex--
		}
	case "down", "j":
		if l.reviewIndex < limit-1 {
			l.reviewIndex++
		}
	case "esc", "enter", "q":
		l.reviewing = false
	}
	return l, nil
}

// advance syncs buffers into the controller and runs the check
// asynchronously so a slow validator never freezes the UI.
func (l *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	if l.broken {
		return l, nil
	}

	switch l.ctrl.State() {
	case session.StateAwaitingReflection:
		if err := l.ctrl.SetReflectionAnswer(l.input.Value()); err != nil {
			return l, nil
		}
	case session.StateInProgress:
		switch l.kind {
		case step.KindQuestion:
			_ = l.ctrl.SetTextAnswer(l.input.Value())
		case step.KindChoice:
			_ = l.ctrl.SetChoiceLetter(l.mc.SelectedLetter())
		case step.KindCodeTask, step.KindUntagged:
			_ = l.ctrl.SetCode(l.editor.Value())
		}
	}

	l.checking = true
	return l, func() tea.Msg {
		res, err := l.ctrl.Advance(context.Background())
		return verdictMsg{result: res, err: err}
	}
}

func (l *LessonScreen) submit() (screen.Screen, tea.Cmd) {
	if l.kind == step.KindCodeTask || l.kind == step.KindUntagged {
		_ = l.ctrl.SetCode(l.editor.Value())
	}
	l.checking = true
	return l, func() tea.Msg {
		return submittedMsg{err: l.ctrl.Submit(context.Background())}
	}
}

func (l *LessonScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !l.loaded || l.ctrl.ReadOnly() || l.reviewing || l.showFeedback {
		return l, nil
	}

	var cmd tea.Cmd
	if l.ctrl.State() == session.StateAwaitingReflection {
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	switch l.kind {
	case step.KindQuestion:
		l.input, cmd = l.input.Update(msg)
	case step.KindChoice:
		l.mc, cmd = l.mc.Update(msg)
	case step.KindCodeTask, step.KindUntagged:
		l.editor, cmd = l.editor.Update(msg)
		// Keep the controller's buffer current so the blocks auto-save and
		// early submit always capture the latest edit.
		_ = l.ctrl.SetCode(l.editor.Value())
	}
	return l, cmd
}
