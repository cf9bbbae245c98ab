package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/codelane/coderoom/internal/step"
)

type fileUnit struct {
	Name          string       `json:"name"`
	IsLocked      bool         `json:"isLocked"`
	IsSequential  bool         `json:"isSequential"`
	AvailableAt   string       `json:"availableAt"`
	Editor        string       `json:"editor"`
	SharesProject bool         `json:"sharesProject"`
	Lessons       []fileLesson `json:"lessons"`
}

type fileLesson struct {
	Title              string   `json:"title"`
	Type               string   `json:"type"`
	IsAIGuided         *bool    `json:"isAiGuided"`
	Steps              []string `json:"steps"`
	StarterCode        string   `json:"starterCode"`
	ReferenceProject   string   `json:"referenceProject"`
	ReflectionQuestion string   `json:"reflectionQuestion"`
}

type curriculumFile struct {
	Units []fileUnit `json:"units"`
}

// LoadFile reads, validates and decodes a curriculum JSON file into domain
// units. The file is rejected whole on the first defect so a bad import
// never writes partial curriculum.
func LoadFile(path string) ([]Unit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum file: %w", err)
	}
	return Load(raw)
}

// Load validates and decodes raw curriculum JSON.
func Load(raw []byte) ([]Unit, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledCurriculumSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("curriculum schema: %w", err)
	}

	var file curriculumFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	units := make([]Unit, 0, len(file.Units))
	for ui, fu := range file.Units {
		u := Unit{
			Name:          fu.Name,
			Position:      ui,
			IsLocked:      fu.IsLocked,
			IsSequential:  fu.IsSequential,
			Editor:        EditorText,
			SharesProject: fu.SharesProject,
		}
		if fu.Editor != "" {
			u.Editor = EditorType(fu.Editor)
		}
		if fu.AvailableAt != "" {
			at, err := time.Parse(time.RFC3339, fu.AvailableAt)
			if err != nil {
				return nil, fmt.Errorf("unit %q: availableAt: %w", fu.Name, err)
			}
			u.AvailableAt = &at
		}

		for li, fl := range fu.Lessons {
			l := Lesson{
				Title:              fl.Title,
				Type:               TypeLesson,
				IsAIGuided:         true,
				Steps:              fl.Steps,
				StarterCode:        fl.StarterCode,
				ReferenceProject:   fl.ReferenceProject,
				ReflectionQuestion: fl.ReflectionQuestion,
				Position:           li,
			}
			if fl.Type == string(TypeAssignment) {
				l.Type = TypeAssignment
				l.IsAIGuided = false
			}
			if fl.IsAIGuided != nil {
				l.IsAIGuided = *fl.IsAIGuided
			}

			// Surface malformed steps at import, attributed to the
			// offending index, instead of at session load.
			for si, rawStep := range fl.Steps {
				if _, err := step.Parse(rawStep); err != nil {
					return nil, fmt.Errorf("unit %q lesson %q step %d: %w", fu.Name, fl.Title, si, err)
				}
			}

			u.Lessons = append(u.Lessons, l)
		}
		units = append(units, u)
	}

	return units, nil
}

func compiledCurriculumSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(curriculumSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal curriculum schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse curriculum schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://curriculum.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile curriculum schema: %w", err)
	}
	return compiled, nil
}
