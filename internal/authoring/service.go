package authoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/step"
)

// Input describes the lesson to generate.
type Input struct {
	Topic    string
	Editor   curriculum.EditorType
	Audience string
}

// Service generates guided lessons with an LLM. Generated steps are
// re-parsed against the wire grammar before anything is returned; a lesson
// with a malformed step is rejected, never clamped or silently repaired.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson authoring service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title              string   `json:"title"`
	Steps              []string `json:"steps"`
	StarterCode        string   `json:"starter_code"`
	ReflectionQuestion string   `json:"reflection_question"`
}

// Generate produces one lesson. The returned lesson has no ID or unit; the
// caller decides where it is saved.
func (s *Service) Generate(ctx context.Context, input Input) (*curriculum.Lesson, error) {
	if input.Topic == "" {
		return nil, fmt.Errorf("authoring: topic is required")
	}
	ctx = llm.WithPurpose(ctx, "author")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(input, s.cfg)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("authoring: generated lesson %q has no steps", out.Title)
	}

	for i, raw := range out.Steps {
		if _, err := step.Parse(raw); err != nil {
			return nil, fmt.Errorf("authoring: generated lesson %q step %d: %w", out.Title, i, err)
		}
	}

	return &curriculum.Lesson{
		Title:              out.Title,
		Type:               curriculum.TypeLesson,
		IsAIGuided:         true,
		Steps:              out.Steps,
		StarterCode:        out.StarterCode,
		ReflectionQuestion: out.ReflectionQuestion,
	}, nil
}
