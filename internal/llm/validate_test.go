package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func verdictSchema() *Schema {
	return &Schema{
		Name:        "test-verdict",
		Description: "A grading verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"passed":   map[string]any{"type": "boolean"},
				"feedback": map[string]any{"type": "string"},
			},
			"required": []any{"passed", "feedback"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"passed":true,"feedback":"Nice loop!"}`)
	if err := validateResponse(verdictSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"passed":true}`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"passed":"yes","feedback":"hm"}`)
	if err := validateResponse(verdictSchema(), raw); err == nil {
		t.Fatal("expected error for wrong field type")
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`the student did well`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON content")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything goes`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should validate anything, got: %v", err)
	}
}
