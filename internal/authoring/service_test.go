package authoring

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/llm"
)

func lessonResponse(t *testing.T, out lessonOutput) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal lesson output: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

func TestGenerate_ValidLesson(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse(t, lessonOutput{
		Title: "Loops in Scratch",
		Steps: []string{
			"[NEXT] Today we make a cat dance forever.",
			"[CHOICE] Which block repeats forever? | A: repeat 10 | B: forever | B",
			"[CODE] Add a forever block around your move block.",
		},
		StarterCode:        "{}",
		ReflectionQuestion: "When would a forever loop be a bad idea?",
	}))

	svc := NewService(mock, DefaultConfig())
	lesson, err := svc.Generate(context.Background(), Input{
		Topic:  "forever loops",
		Editor: curriculum.EditorBlocks,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if lesson.Title != "Loops in Scratch" {
		t.Errorf("Title = %q, want %q", lesson.Title, "Loops in Scratch")
	}
	if len(lesson.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(lesson.Steps))
	}
	if !lesson.IsAIGuided {
		t.Error("IsAIGuided = false, want true")
	}
	if lesson.Type != curriculum.TypeLesson {
		t.Errorf("Type = %q, want %q", lesson.Type, curriculum.TypeLesson)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "guided-lesson" {
		t.Errorf("request schema = %+v, want guided-lesson", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "forever loops") {
		t.Errorf("user message missing topic: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "block-programming") {
		t.Errorf("user message missing blocks hint: %q", req.Messages[0].Content)
	}
}

func TestGenerate_RejectsMalformedStep(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse(t, lessonOutput{
		Title: "Broken Quiz",
		Steps: []string{
			"[NEXT] A fine step.",
			"[CHOICE] only a question, no options",
		},
	}))

	svc := NewService(mock, DefaultConfig())
	_, err := svc.Generate(context.Background(), Input{Topic: "variables"})
	if err == nil {
		t.Fatal("Generate() error = nil, want malformed step error")
	}
	if !strings.Contains(err.Error(), "step 1") {
		t.Errorf("error %q does not name the offending step index", err)
	}
}

func TestGenerate_RejectsEmptyLesson(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse(t, lessonOutput{Title: "Empty"}))

	svc := NewService(mock, DefaultConfig())
	_, err := svc.Generate(context.Background(), Input{Topic: "nothing"})
	if err == nil {
		t.Fatal("Generate() error = nil, want error for empty lesson")
	}
}

func TestGenerate_RequiresTopic(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	_, err := svc.Generate(context.Background(), Input{})
	if err == nil {
		t.Fatal("Generate() error = nil, want error for missing topic")
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable

	svc := NewService(mock, DefaultConfig())
	_, err := svc.Generate(context.Background(), Input{Topic: "events"})
	if err == nil {
		t.Fatal("Generate() error = nil, want provider error")
	}
}
