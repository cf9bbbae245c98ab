package home

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/store"
)

type fakeUnits struct {
	units []curriculum.Unit
}

func (f *fakeUnits) List(context.Context) ([]curriculum.Unit, error) { return f.units, nil }
func (f *fakeUnits) GetLesson(context.Context, uuid.UUID) (*curriculum.Lesson, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUnits) GetUnit(context.Context, int) (*curriculum.Unit, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUnits) Import(context.Context, []curriculum.Unit) error { return nil }
func (f *fakeUnits) SaveLesson(context.Context, curriculum.Lesson) (uuid.UUID, error) {
	return uuid.Nil, nil
}

// fakeSubmissions serves the lesson map's status lookups; the mutating
// methods are unused by this screen.
type fakeSubmissions struct {
	statuses map[uuid.UUID]curriculum.SubmissionStatus
}

func (f *fakeSubmissions) Find(context.Context, uuid.UUID, uuid.UUID) (*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissions) MostRecentInUnit(context.Context, int, uuid.UUID, uuid.UUID) (*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissions) UpsertDraft(context.Context, uuid.UUID, uuid.UUID, store.DraftPatch) (*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissions) UpsertSubmitted(context.Context, uuid.UUID, uuid.UUID, store.SubmitPatch) (*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissions) StatusesByLesson(context.Context, uuid.UUID) (map[uuid.UUID]curriculum.SubmissionStatus, error) {
	out := make(map[uuid.UUID]curriculum.SubmissionStatus, len(f.statuses))
	for id, st := range f.statuses {
		out[id] = st
	}
	return out, nil
}

func (f *fakeSubmissions) CountByStatus(context.Context, uuid.UUID) (map[curriculum.SubmissionStatus]int, error) {
	return nil, nil
}

func (f *fakeSubmissions) DeleteByStudent(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

// runLoad executes the screen's Init command and feeds the resulting
// message back, the way the Bubble Tea runtime would.
func runLoad(t *testing.T, h *HomeScreen) {
	t.Helper()
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("Init must produce a load command")
	}
	msg, ok := cmd().(mapLoadedMsg)
	if !ok {
		t.Fatalf("unexpected message type from load command")
	}
	if msg.err != nil {
		t.Fatalf("load: %v", msg.err)
	}
	h.Update(msg)
}

func TestReloadAfterReturnUnlocksNextLesson(t *testing.T) {
	first := curriculum.Lesson{ID: uuid.New(), Title: "One", Position: 0}
	second := curriculum.Lesson{ID: uuid.New(), Title: "Two", Position: 1}
	unit := curriculum.Unit{
		ID:           1,
		Name:         "Basics",
		IsSequential: true,
		Lessons:      []curriculum.Lesson{first, second},
	}

	subs := &fakeSubmissions{statuses: map[uuid.UUID]curriculum.SubmissionStatus{}}
	h := New(Deps{
		Units:       &fakeUnits{units: []curriculum.Unit{unit}},
		Submissions: subs,
		Student:     profile.Profile{ID: uuid.New(), Name: "Ada"},
	})
	runLoad(t, h)

	if !curriculum.Locked(unit, 1, h.statuses, time.Now()) {
		t.Fatal("lesson 1 should start locked in a sequential unit")
	}

	// The lesson screen submits lesson 0 while the map is covered.
	subs.statuses[first.ID] = curriculum.StatusSubmitted

	// Going back re-runs Init (Router.Pop), which refetches statuses.
	runLoad(t, h)

	if curriculum.Locked(unit, 1, h.statuses, time.Now()) {
		t.Error("lesson 1 must unlock as soon as the map is shown again")
	}
	if h.statuses[first.ID] != curriculum.StatusSubmitted {
		t.Errorf("badge status = %q, want %q", h.statuses[first.ID], curriculum.StatusSubmitted)
	}
}

func TestLockNotice(t *testing.T) {
	now := time.Now()
	opens := now.Add(time.Hour)

	tests := []struct {
		name string
		unit curriculum.Unit
		want string
	}{
		{
			name: "manual lock",
			unit: curriculum.Unit{IsLocked: true, AvailableAt: &opens},
			want: "This unit is locked by your teacher.",
		},
		{
			name: "scheduled",
			unit: curriculum.Unit{AvailableAt: &opens},
			want: "This unit opens " + opens.Local().Format("Jan 2 15:04") + ".",
		},
		{
			name: "sequential",
			unit: curriculum.Unit{IsSequential: true},
			want: "This lesson is locked. Finish the previous one first!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lockNotice(tt.unit, now); got != tt.want {
				t.Errorf("lockNotice() = %q, want %q", got, tt.want)
			}
		})
	}
}
