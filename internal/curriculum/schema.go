package curriculum

// curriculumSchema validates an import file before any of it is written.
// Step strings are additionally re-parsed by the loader, because the step
// grammar (choice segment counts) is not expressible in JSON Schema.
var curriculumSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"units"},
	"additionalProperties": false,
	"properties": map[string]any{
		"units": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"name", "lessons"},
				"additionalProperties": false,
				"properties": map[string]any{
					"name":          map[string]any{"type": "string", "minLength": 1},
					"isLocked":      map[string]any{"type": "boolean"},
					"isSequential":  map[string]any{"type": "boolean"},
					"availableAt":   map[string]any{"type": "string", "format": "date-time"},
					"editor":        map[string]any{"enum": []any{"blocks", "text"}},
					"sharesProject": map[string]any{"type": "boolean"},
					"lessons": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"required":             []any{"title", "steps"},
							"additionalProperties": false,
							"properties": map[string]any{
								"title":              map[string]any{"type": "string", "minLength": 1},
								"type":               map[string]any{"enum": []any{"lesson", "assignment"}},
								"isAiGuided":         map[string]any{"type": "boolean"},
								"steps":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
								"starterCode":        map[string]any{"type": "string"},
								"referenceProject":   map[string]any{"type": "string"},
								"reflectionQuestion": map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
}
