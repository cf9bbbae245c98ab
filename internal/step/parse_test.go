package step

import "testing"

func TestParse_Observation(t *testing.T) {
	s, err := Parse("[NEXT] look at the stage")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Kind != KindObservation {
		t.Errorf("Kind = %v, want KindObservation", s.Kind)
	}
	if s.Body != "look at the stage" {
		t.Errorf("Body = %q, want %q", s.Body, "look at the stage")
	}
}

func TestParse_Question(t *testing.T) {
	s, err := Parse("[TEXT] why does the sprite move?")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Kind != KindQuestion {
		t.Errorf("Kind = %v, want KindQuestion", s.Kind)
	}
	if s.Body != "why does the sprite move?" {
		t.Errorf("Body = %q", s.Body)
	}
}

func TestParse_Untagged(t *testing.T) {
	s, err := Parse("draw a circle")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Kind != KindUntagged {
		t.Errorf("Kind = %v, want KindUntagged", s.Kind)
	}
	if s.Body != "draw a circle" {
		t.Errorf("Body = %q", s.Body)
	}
}

func TestParse_Choice(t *testing.T) {
	s, err := Parse("[CHOICE] Pick red | A: Red | B: Blue | A")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Kind != KindChoice {
		t.Fatalf("Kind = %v, want KindChoice", s.Kind)
	}
	if s.Choice == nil {
		t.Fatal("Choice payload is nil")
	}
	if s.Choice.Question != "Pick red" {
		t.Errorf("Question = %q", s.Choice.Question)
	}
	if len(s.Choice.Options) != 2 {
		t.Fatalf("len(Options) = %d, want 2", len(s.Choice.Options))
	}
	if s.Choice.Options[0].Letter != "A" || s.Choice.Options[0].Text != "Red" {
		t.Errorf("Options[0] = %+v", s.Choice.Options[0])
	}
	if s.Choice.Options[1].Letter != "B" || s.Choice.Options[1].Text != "Blue" {
		t.Errorf("Options[1] = %+v", s.Choice.Options[1])
	}
	if s.Choice.Answer != "A" {
		t.Errorf("Answer = %q, want %q", s.Choice.Answer, "A")
	}
}

func TestParse_ChoiceTooFewSegments(t *testing.T) {
	cases := []string{
		"[CHOICE] Pick red",
		"[CHOICE] Pick red | A",
	}
	for _, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		}
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	cases := []struct {
		kind Kind
		body string
	}{
		{KindObservation, "look at the stage"},
		{KindQuestion, "what does this loop do?"},
		{KindCodeTask, "make the sprite jump"},
		{KindChoice, "Pick red | A: Red | B: Blue | A"},
	}

	for _, tc := range cases {
		raw := Serialize(tc.kind, tc.body)
		s, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(Serialize(%v, %q)) error: %v", tc.kind, tc.body, err)
		}
		if s.Kind != tc.kind {
			t.Errorf("round-trip Kind = %v, want %v", s.Kind, tc.kind)
		}
		if s.Body != tc.body {
			t.Errorf("round-trip Body = %q, want %q", s.Body, tc.body)
		}
	}
}

func TestSerialize_UntaggedHasNoTag(t *testing.T) {
	raw := Serialize(KindUntagged, "draw a circle")
	if raw != "draw a circle" {
		t.Errorf("Serialize(KindUntagged, ...) = %q, want bare body", raw)
	}
}

func TestKind_RequiresInput(t *testing.T) {
	if !KindQuestion.RequiresInput() {
		t.Error("KindQuestion should require input")
	}
	if !KindChoice.RequiresInput() {
		t.Error("KindChoice should require input")
	}
	if KindObservation.RequiresInput() {
		t.Error("KindObservation should not require input")
	}
	if KindCodeTask.RequiresInput() {
		t.Error("KindCodeTask should not require input")
	}
	if KindUntagged.RequiresInput() {
		t.Error("KindUntagged should not require input")
	}
}
