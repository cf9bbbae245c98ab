package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func importOneLesson(t *testing.T, s *Store) curriculum.Lesson {
	t.Helper()
	ctx := context.Background()
	err := s.UnitRepo().Import(ctx, []curriculum.Unit{{
		Name:         "Unit 1",
		Position:     0,
		IsSequential: true,
		Editor:       curriculum.EditorText,
		Lessons: []curriculum.Lesson{{
			ID:    uuid.New(),
			Title: "First Lesson",
			Type:  curriculum.TypeLesson,
			Steps: []string{"[NEXT] Read this."},
		}},
	}})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	units, err := s.UnitRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(units) != 1 || len(units[0].Lessons) != 1 {
		t.Fatalf("imported units = %+v, want one unit with one lesson", units)
	}
	return units[0].Lessons[0]
}

func TestUpsertDraft_SingleRowPerPair(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	lesson := importOneLesson(t, s)
	student := uuid.New()
	repo := s.SubmissionRepo()

	for i := 0; i < 3; i++ {
		_, err := repo.UpsertDraft(ctx, lesson.ID, student, DraftPatch{
			Code:        "code",
			CurrentStep: i,
		})
		if err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	found, err := repo.Find(ctx, lesson.ID, student)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected a submission")
	}
	if found.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", found.CurrentStep)
	}

	statuses, err := repo.StatusesByLesson(ctx, student)
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if len(statuses) != 1 {
		t.Errorf("len(statuses) = %d, want 1 row per (lesson, student)", len(statuses))
	}
}

func TestUpsertDraft_HistoryOverwritesByStepIndex(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	lesson := importOneLesson(t, s)
	student := uuid.New()
	repo := s.SubmissionRepo()

	first := StepHistory{StepIndex: 0, StudentInput: "a", Passed: true}
	second := StepHistory{StepIndex: 0, StudentInput: "b", Feedback: "better", Passed: true}

	if _, err := repo.UpsertDraft(ctx, lesson.ID, student, DraftPatch{CurrentStep: 1, HistoryItem: &first}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	sub, err := repo.UpsertDraft(ctx, lesson.ID, student, DraftPatch{CurrentStep: 1, HistoryItem: &second})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(sub.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(sub.History))
	}
	if sub.History[0].StudentInput != "b" {
		t.Errorf("StudentInput = %q, want %q", sub.History[0].StudentInput, "b")
	}
}

func TestUpsertSubmitted_TerminalIsImmutable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	lesson := importOneLesson(t, s)
	student := uuid.New()
	repo := s.SubmissionRepo()

	sub, err := repo.UpsertSubmitted(ctx, lesson.ID, student, SubmitPatch{Code: "final", CurrentStep: 1})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.Status != curriculum.StatusSubmitted {
		t.Fatalf("Status = %q, want %q", sub.Status, curriculum.StatusSubmitted)
	}
	if sub.SubmittedAt == nil {
		t.Error("SubmittedAt not set")
	}

	// A later draft save cannot reopen the submission.
	after, err := repo.UpsertDraft(ctx, lesson.ID, student, DraftPatch{Code: "changed", CurrentStep: 0})
	if err != nil {
		t.Fatalf("draft after submit: %v", err)
	}
	if after.Code != "final" {
		t.Errorf("Code = %q, want submitted content untouched", after.Code)
	}
	if after.Status != curriculum.StatusSubmitted {
		t.Errorf("Status = %q, want still submitted", after.Status)
	}

	// Submitting twice is a no-op.
	again, err := repo.UpsertSubmitted(ctx, lesson.ID, student, SubmitPatch{Code: "other"})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if again.Code != "final" {
		t.Errorf("Code = %q, want first submit preserved", again.Code)
	}
}

func TestDeleteByStudent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	lesson := importOneLesson(t, s)
	student := uuid.New()
	repo := s.SubmissionRepo()

	if _, err := repo.UpsertDraft(ctx, lesson.ID, student, DraftPatch{CurrentStep: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	n, err := repo.DeleteByStudent(ctx, student)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	found, err := repo.Find(ctx, lesson.ID, student)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != nil {
		t.Error("expected no submission after delete")
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  "grade",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	// Most recent first.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("sequence not descending: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
}
