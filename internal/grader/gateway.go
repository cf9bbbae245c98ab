package grader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/step"
)

// ErrNoVerdict indicates the external grader produced no usable verdict.
// Callers must not coerce this into a pass or a fail.
var ErrNoVerdict = errors.New("no verdict from grader")

// Verdict is the uniform result of checking one step.
type Verdict struct {
	Passed   bool   `json:"passed"`
	Feedback string `json:"feedback"`
}

// StepContext carries the student's current inputs into a check.
type StepContext struct {
	// Code is the full editor buffer; the graded input for code tasks.
	Code string
	// TextAnswer is the free-text answer; the graded input for questions.
	TextAnswer string
	// ChoiceLetter is the selected option letter for choice steps.
	ChoiceLetter string
	// AIGuided mirrors the lesson's flag. When false no external call is
	// made and every step passes on the raw input.
	AIGuided bool
}

// Input returns the student input that a check of the given kind grades.
func (c StepContext) Input(kind step.Kind) string {
	switch kind {
	case step.KindQuestion:
		return c.TextAnswer
	case step.KindChoice:
		return c.ChoiceLetter
	default:
		return c.Code
	}
}

const (
	observationFeedback = "Observation completed."
	choiceCorrect       = "Correct!"
)

// Gateway wraps the LLM step-grader and the local exact-match logic behind
// one CheckStep operation. It never writes to the store; it only returns a
// verdict for the session controller to act on.
type Gateway struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// CheckStep evaluates the student's input against one parsed step.
// Observation and choice steps are decided locally with no external call;
// question and code steps of AI-guided lessons go to the LLM. A failed or
// malformed LLM response surfaces as ErrNoVerdict.
func (g *Gateway) CheckStep(ctx context.Context, s step.Step, sc StepContext) (Verdict, error) {
	if s.Kind == step.KindObservation {
		return Verdict{Passed: true, Feedback: observationFeedback}, nil
	}

	// Assignments and other non-AI-guided lessons skip validation for every
	// kind; they advance on manual confirmation with the raw input recorded.
	if !sc.AIGuided {
		return Verdict{Passed: true}, nil
	}

	if s.Kind == step.KindChoice {
		if s.Choice == nil {
			return Verdict{}, fmt.Errorf("choice step has no parsed payload")
		}
		if sc.ChoiceLetter == s.Choice.Answer {
			return Verdict{Passed: true, Feedback: choiceCorrect}, nil
		}
		return Verdict{
			Passed:   false,
			Feedback: fmt.Sprintf("Not quite. The correct answer is %s.", s.Choice.Answer),
		}, nil
	}

	return g.grade(ctx, s.Body, sc.Input(s.Kind))
}

func (g *Gateway) grade(ctx context.Context, instruction, input string) (Verdict, error) {
	if g.provider == nil {
		return Verdict{}, fmt.Errorf("%w: no LLM provider configured", ErrNoVerdict)
	}
	ctx = llm.WithPurpose(ctx, "grade")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: gradeUserPrompt(instruction, input)},
		},
		Schema:    verdictSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrNoVerdict, err)
	}

	var verdict Verdict
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return Verdict{}, fmt.Errorf("%w: decode verdict: %v", ErrNoVerdict, err)
	}
	return verdict, nil
}
