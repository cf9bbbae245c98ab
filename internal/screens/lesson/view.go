package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/codelane/coderoom/internal/session"
	"github.com/codelane/coderoom/internal/step"
	"github.com/codelane/coderoom/internal/ui/components"
	"github.com/codelane/coderoom/internal/ui/theme"
)

func (l *LessonScreen) View(width, height int) string {
	switch {
	case l.errMsg != "":
		return renderError(width, l.errMsg)
	case !l.loaded:
		return renderDim(width, "Opening your lesson...")
	case l.reviewing:
		return l.renderReview(width)
	case l.ctrl.State() == session.StateSubmitted:
		return l.renderSubmitted(width)
	case l.showFeedback:
		return l.renderFeedback(width)
	case l.ctrl.State() == session.StateAwaitingReflection:
		return l.renderReflection(width)
	case l.checking:
		return renderDim(width, "Checking your work...")
	case l.broken:
		return l.renderBrokenStep(width)
	default:
		return l.renderStep(width, height)
	}
}

// renderStep shows the progress bar, the instruction, and the input area
// for the current step.
func (l *LessonScreen) renderStep(width, height int) string {
	total := l.ctrl.StepCount()
	index := l.ctrl.CurrentStep()

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Step %d/%d", index+1, total),
		float64(index)/float64(max(total, 1)),
		false,
		min(width-8, 50),
	).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-6, 0))))
	b.WriteString("\n\n")

	s, err := l.ctrl.Step(index)
	if err != nil {
		return b.String()
	}

	if s.Kind != step.KindChoice {
		instr := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Foreground(theme.Text).
			Bold(true).
			Render(s.Body)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instr))
		b.WriteString("\n\n")
	}

	switch s.Kind {
	case step.KindObservation:
		b.WriteString(renderDim(width, "Press Enter when you're ready to move on."))
	case step.KindQuestion:
		line := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + l.input.View())
		b.WriteString(line)
	case step.KindChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.mc.View()))
	case step.KindCodeTask, step.KindUntagged:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.editor.View()))
	}

	return b.String()
}

func (l *LessonScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if l.feedbackPass {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Nice work!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not yet"))
	}

	if l.feedbackText != "" {
		b.WriteString("\n\n")
		text := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(l.feedbackText)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	}

	b.WriteString("\n\n")
	label := "Continue"
	if !l.feedbackPass {
		label = "Try again"
	}
	btn := components.NewButton(label, true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	return b.String()
}

func (l *LessonScreen) renderReflection(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("One last thing before you hand this in:"))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true).
		Render(l.ctrl.Lesson().ReflectionQuestion)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(l.input.View()))
	return b.String()
}

// renderSubmitted is the read-only recap once the lesson is handed in.
func (l *LessonScreen) renderSubmitted(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Lesson handed in!"))
	b.WriteString("\n\n")

	history := l.ctrl.History()
	if len(history) == 0 {
		b.WriteString(renderDim(width, "Submitted without completed steps."))
		return b.String()
	}

	var lines []string
	for _, h := range history {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !h.Passed {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s Step %d  %s", mark, h.StepIndex+1, truncate(h.StudentInput, 48)))
	}
	block := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	b.WriteString("\n\n")
	b.WriteString(renderDim(width, "Use ↑↓ to review your steps, Esc to go back."))
	return b.String()
}

func (l *LessonScreen) renderReview(width int) string {
	h, err := l.ctrl.Review(l.reviewIndex)
	if err != nil {
		return renderDim(width, fmt.Sprintf("Nothing recorded for step %d yet.", l.reviewIndex+1))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Reviewing step %d", h.StepIndex+1)))
	b.WriteString("\n\n")

	if s, err := l.ctrl.Step(h.StepIndex); err == nil {
		instr := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(s.Body)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instr))
		b.WriteString("\n\n")
	}

	answer := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render("Your answer: " + h.StudentInput)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))

	if h.Feedback != "" {
		b.WriteString("\n\n")
		feedback := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Secondary).
			Render("Feedback: " + h.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback))
	}

	return b.String()
}

func (l *LessonScreen) renderBrokenStep(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf(
			"\n\nStep %d of this lesson could not be loaded.\nTell your teacher — the lesson content needs fixing.",
			l.ctrl.CurrentStep()+1,
		))
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to continue.", msg))
}

func renderDim(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
