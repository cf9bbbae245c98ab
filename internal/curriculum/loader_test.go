package curriculum

import (
	"strings"
	"testing"
)

const validCurriculum = `{
  "units": [
    {
      "name": "Getting Started",
      "isSequential": true,
      "editor": "blocks",
      "sharesProject": true,
      "lessons": [
        {
          "title": "Meet the Stage",
          "steps": ["[NEXT] look around", "[TEXT] what do you see?"],
          "starterCode": "",
          "referenceProject": "{\"sprites\":[]}"
        },
        {
          "title": "Free Build",
          "type": "assignment",
          "steps": ["build anything you like"]
        }
      ]
    }
  ]
}`

func TestLoad_Valid(t *testing.T) {
	units, err := Load([]byte(validCurriculum))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}

	u := units[0]
	if !u.IsSequential {
		t.Error("IsSequential not carried over")
	}
	if u.Editor != EditorBlocks {
		t.Errorf("Editor = %q, want blocks", u.Editor)
	}
	if !u.SharesProject {
		t.Error("SharesProject not carried over")
	}
	if len(u.Lessons) != 2 {
		t.Fatalf("len(Lessons) = %d, want 2", len(u.Lessons))
	}

	if u.Lessons[0].Type != TypeLesson || !u.Lessons[0].IsAIGuided {
		t.Errorf("lesson 0 = %q guided=%v, want guided lesson", u.Lessons[0].Type, u.Lessons[0].IsAIGuided)
	}
	// Assignments default to ungraded.
	if u.Lessons[1].Type != TypeAssignment || u.Lessons[1].IsAIGuided {
		t.Errorf("lesson 1 = %q guided=%v, want ungraded assignment", u.Lessons[1].Type, u.Lessons[1].IsAIGuided)
	}
}

func TestLoad_RejectsMissingUnits(t *testing.T) {
	if _, err := Load([]byte(`{}`)); err == nil {
		t.Error("expected schema error for missing units")
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	raw := strings.Replace(validCurriculum, `"name"`, `"nam"`, 1)
	if _, err := Load([]byte(raw)); err == nil {
		t.Error("expected schema error for unknown field")
	}
}

func TestLoad_RejectsMalformedChoiceStep(t *testing.T) {
	raw := strings.Replace(validCurriculum, "[NEXT] look around", "[CHOICE] pick one | A", 1)
	_, err := Load([]byte(raw))
	if err == nil {
		t.Fatal("expected error for malformed choice step")
	}
	if !strings.Contains(err.Error(), "step 0") {
		t.Errorf("error should name the offending step index: %v", err)
	}
}

func TestLoad_AvailableAt(t *testing.T) {
	raw := strings.Replace(validCurriculum, `"isSequential": true,`, `"isSequential": true, "availableAt": "2026-09-01T10:00:00Z",`, 1)
	units, err := Load([]byte(raw))
	if err != nil {
		t.Fatalf("valid RFC3339 availableAt rejected: %v", err)
	}
	if units[0].AvailableAt == nil {
		t.Fatal("AvailableAt not set")
	}

	raw = strings.Replace(validCurriculum, `"isSequential": true,`, `"isSequential": true, "availableAt": "tomorrow-ish",`, 1)
	if _, err := Load([]byte(raw)); err == nil {
		t.Error("expected error for unparseable availableAt")
	}
}
