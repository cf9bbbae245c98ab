package authoring

import (
	"fmt"
	"strings"

	"github.com/codelane/coderoom/internal/curriculum"
)

const lessonSystemPrompt = `You write guided coding lessons for school students.

A lesson is an ordered list of small steps. Each step is one string:
- "[NEXT] ..." — something to read or observe, no input needed.
- "[TEXT] ..." — a short free-text question about the concept.
- "[CODE] ..." — one small coding task the student types an answer for.
- "[CHOICE] question | A: first option | B: second option | A" — a quiz;
  the last segment is the correct letter and must match one of the options.
- A step with no tag is a coding task checked against the student's whole program.

Rules:
- Steps build on each other; one new idea per step.
- Start with a [NEXT] step that sets the scene.
- Mix step kinds; never more than two of the same kind in a row.
- Keep every step under 3 sentences, written directly to the student.
- CHOICE steps must have 2-4 options and exactly one correct letter.`

func buildLessonUserMessage(input Input, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a lesson about: %s\n", input.Topic)
	fmt.Fprintf(&b, "Number of steps: between %d and %d.\n", cfg.MinSteps, cfg.MaxSteps)

	if input.Editor == curriculum.EditorBlocks {
		b.WriteString("The students use a visual block-programming editor (Scratch-like); coding tasks describe blocks to add, not text syntax.\n")
	} else {
		b.WriteString("The students type code in a plain text editor.\n")
	}
	if input.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", input.Audience)
	}
	return b.String()
}
