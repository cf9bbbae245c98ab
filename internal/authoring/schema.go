package authoring

import "github.com/codelane/coderoom/internal/llm"

// LessonSchema defines the JSON schema for guided-lesson generation. Steps
// come back already encoded in the step wire grammar so they can be stored
// verbatim.
var LessonSchema = &llm.Schema{
	Name:        "guided-lesson",
	Description: "A guided coding lesson as an ordered list of tagged steps",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title (3-8 words)",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"description": "One step: '[NEXT] ...' for something to observe, " +
						"'[TEXT] ...' for a free-text question, '[CODE] ...' for a coding task, " +
						"'[CHOICE] question | A: option | B: option | correctLetter' for a quiz. " +
						"A step with no tag is a coding task checked against the whole program.",
				},
				"minItems":    1,
				"description": "Ordered steps the student works through",
			},
			"starter_code": map[string]any{
				"type":        "string",
				"description": "Code the student starts from; may be empty",
			},
			"reflection_question": map[string]any{
				"type":        "string",
				"description": "One short question the student answers before handing in; may be empty",
			},
		},
		"required":             []any{"title", "steps", "starter_code", "reflection_question"},
		"additionalProperties": false,
	},
}
