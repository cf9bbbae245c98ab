package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/step"
)

func mustParse(t *testing.T, raw string) step.Step {
	t.Helper()
	s, err := step.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return s
}

func TestCheckStep_ObservationAlwaysPasses(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock)

	v, err := g.CheckStep(context.Background(), mustParse(t, "[NEXT] Look at the stage"), StepContext{AIGuided: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Passed {
		t.Error("observation should pass")
	}
	if v.Feedback != "Observation completed." {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("observation must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestCheckStep_ChoiceExactMatch(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock)
	s := mustParse(t, "[CHOICE] Pick red | A: Red | B: Blue | A")

	v, err := g.CheckStep(context.Background(), s, StepContext{ChoiceLetter: "A", AIGuided: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Passed {
		t.Error("matching letter should pass")
	}

	v, err = g.CheckStep(context.Background(), s, StepContext{ChoiceLetter: "B", AIGuided: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Passed {
		t.Error("wrong letter should fail")
	}
	if v.Feedback != "Not quite. The correct answer is A." {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("choice must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestCheckStep_ChoiceIsCaseSensitive(t *testing.T) {
	g := New(llm.NewMockProvider())
	s := mustParse(t, "[CHOICE] Pick red | A: Red | B: Blue | A")

	v, err := g.CheckStep(context.Background(), s, StepContext{ChoiceLetter: "a", AIGuided: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Passed {
		t.Error("lowercase letter must not match; comparison is exact")
	}
}

func TestCheckStep_QuestionDelegatesToLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"passed":true,"feedback":"Nice reasoning!"}`),
	})
	g := New(mock)

	v, err := g.CheckStep(context.Background(), mustParse(t, "[TEXT] Why does the loop stop?"), StepContext{
		TextAnswer: "Because the condition becomes false",
		AIGuided:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Passed || v.Feedback != "Nice reasoning!" {
		t.Errorf("verdict = %+v", v)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	got := mock.Calls[0].Messages[0].Content
	if !strings.Contains(got, "Why does the loop stop?") || !strings.Contains(got, "condition becomes false") {
		t.Errorf("prompt missing instruction or input: %q", got)
	}
}

func TestCheckStep_CodeTaskSendsBuffer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"passed":false,"feedback":"The circle is missing."}`),
	})
	g := New(mock)

	v, err := g.CheckStep(context.Background(), mustParse(t, "draw a circle"), StepContext{
		Code:     "rect(10, 10)",
		AIGuided: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Passed {
		t.Error("expected fail verdict")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "rect(10, 10)") {
		t.Error("code buffer not sent to grader")
	}
}

func TestCheckStep_NotAIGuidedSkipsValidation(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock)

	v, err := g.CheckStep(context.Background(), mustParse(t, "[CODE] build anything"), StepContext{
		Code:     "whatever",
		AIGuided: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Passed {
		t.Error("ungraded lessons pass every step")
	}
	if mock.CallCount() != 0 {
		t.Errorf("ungraded lessons must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestCheckStep_ProviderFailureIsNoVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := New(mock)

	_, err := g.CheckStep(context.Background(), mustParse(t, "[TEXT] why?"), StepContext{
		TextAnswer: "because",
		AIGuided:   true,
	})
	if !errors.Is(err, ErrNoVerdict) {
		t.Fatalf("expected ErrNoVerdict, got %v", err)
	}
}
