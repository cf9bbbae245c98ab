package grader

import (
	"fmt"

	"github.com/codelane/coderoom/internal/llm"
)

const gradeSystemPrompt = `You are a friendly coding teacher checking one small step of a student's work.

Rules:
- Judge ONLY whether the student's input satisfies the step instruction. Ignore style, naming, and unrelated mistakes.
- Be generous with partial phrasing on free-text answers; exactness of wording does not matter, understanding does.
- Feedback is 1-2 short sentences, encouraging, addressed to the student. When the step is not passed, say what to fix without giving the full answer away.
- Never mention that you are an AI or that this is automated.`

func gradeUserPrompt(instruction, input string) string {
	return fmt.Sprintf("Step instruction:\n%s\n\nStudent input:\n%s", instruction, input)
}

var verdictSchema = &llm.Schema{
	Name:        "step-verdict",
	Description: "Whether the student's input satisfies the step instruction, with short feedback.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passed": map[string]any{
				"type":        "boolean",
				"description": "True when the input satisfies the instruction.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "1-2 encouraging sentences for the student.",
			},
		},
		"required":             []any{"passed", "feedback"},
		"additionalProperties": false,
	},
}
