package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/llm"
	"github.com/codelane/coderoom/internal/store"
)

// fakeRepo is an in-memory SubmissionRepo mirroring the store's
// find-before-write and overwrite-by-step-index semantics.
type fakeRepo struct {
	mu          sync.Mutex
	subs        map[string]*store.Submission
	lessonUnits map[uuid.UUID]int
	draftCalls  int
	submitCalls int
	failDrafts  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		subs:        make(map[string]*store.Submission),
		lessonUnits: make(map[uuid.UUID]int),
	}
}

func key(lessonID, studentID uuid.UUID) string {
	return lessonID.String() + "/" + studentID.String()
}

func (r *fakeRepo) Find(_ context.Context, lessonID, studentID uuid.UUID) (*store.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[key(lessonID, studentID)]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeRepo) MostRecentInUnit(_ context.Context, unitID int, studentID, excluding uuid.UUID) (*store.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *store.Submission
	for _, s := range r.subs {
		if s.StudentID != studentID || s.LessonID == excluding {
			continue
		}
		if r.lessonUnits[s.LessonID] != unitID {
			continue
		}
		if best == nil || s.UpdatedAt.After(best.UpdatedAt) {
			best = s
		}
	}
	if best == nil {
		return nil, nil
	}
	clone := *best
	return &clone, nil
}

func (r *fakeRepo) UpsertDraft(_ context.Context, lessonID, studentID uuid.UUID, patch store.DraftPatch) (*store.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draftCalls++
	if r.failDrafts {
		return nil, errors.New("disk full")
	}

	k := key(lessonID, studentID)
	s, ok := r.subs[k]
	if !ok {
		s = &store.Submission{LessonID: lessonID, StudentID: studentID, Status: curriculum.StatusDraft}
		r.subs[k] = s
	}
	if s.Status.Terminal() {
		clone := *s
		return &clone, nil
	}
	s.Code = patch.Code
	s.TextAnswer = patch.TextAnswer
	s.CurrentStep = patch.CurrentStep
	if patch.HistoryItem != nil {
		replaced := false
		for i, h := range s.History {
			if h.StepIndex == patch.HistoryItem.StepIndex {
				s.History[i] = *patch.HistoryItem
				replaced = true
			}
		}
		if !replaced {
			s.History = append(s.History, *patch.HistoryItem)
		}
	}
	s.UpdatedAt = time.Now()
	clone := *s
	return &clone, nil
}

func (r *fakeRepo) UpsertSubmitted(_ context.Context, lessonID, studentID uuid.UUID, patch store.SubmitPatch) (*store.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitCalls++

	k := key(lessonID, studentID)
	s, ok := r.subs[k]
	if !ok {
		s = &store.Submission{LessonID: lessonID, StudentID: studentID}
		r.subs[k] = s
	}
	if s.Status.Terminal() {
		clone := *s
		return &clone, nil
	}
	s.Status = curriculum.StatusSubmitted
	s.Code = patch.Code
	s.TextAnswer = patch.TextAnswer
	s.ReflectionAnswer = patch.ReflectionAnswer
	s.CurrentStep = patch.CurrentStep
	now := time.Now()
	s.SubmittedAt = &now
	s.UpdatedAt = now
	clone := *s
	return &clone, nil
}

func (r *fakeRepo) StatusesByLesson(_ context.Context, studentID uuid.UUID) (map[uuid.UUID]curriculum.SubmissionStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[uuid.UUID]curriculum.SubmissionStatus)
	for _, s := range r.subs {
		if s.StudentID == studentID {
			out[s.LessonID] = s.Status
		}
	}
	return out, nil
}

func (r *fakeRepo) CountByStatus(_ context.Context, studentID uuid.UUID) (map[curriculum.SubmissionStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[curriculum.SubmissionStatus]int)
	for _, s := range r.subs {
		if s.StudentID == studentID {
			out[s.Status]++
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteByStudent(_ context.Context, studentID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k, s := range r.subs {
		if s.StudentID == studentID {
			delete(r.subs, k)
			n++
		}
	}
	return n, nil
}

func passResponse(feedback string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{"passed":true,"feedback":"` + feedback + `"}`)}
}

func testLesson(steps ...string) curriculum.Lesson {
	return curriculum.Lesson{
		ID:          uuid.New(),
		Title:       "Loops",
		Type:        curriculum.TypeLesson,
		IsAIGuided:  true,
		Steps:       steps,
		StarterCode: "// start here",
	}
}

func textUnit(lessons ...curriculum.Lesson) curriculum.Unit {
	return curriculum.Unit{ID: 1, Name: "Basics", Editor: curriculum.EditorText, Lessons: lessons}
}

func loadController(t *testing.T, unit curriculum.Unit, lesson curriculum.Lesson, repo *fakeRepo, mock *llm.MockProvider) *Controller {
	t.Helper()
	c := New(unit, lesson, uuid.New(), repo, grader.New(mock))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return c
}

func TestAdvance_ObservationSkipsValidator(t *testing.T) {
	lesson := testLesson("[NEXT] look", "[TEXT] why?", "draw a circle")
	repo := newFakeRepo()
	mock := llm.NewMockProvider()
	c := loadController(t, textUnit(lesson), lesson, repo, mock)

	if c.CurrentStep() != 0 {
		t.Fatalf("fresh session currentStep = %d, want 0", c.CurrentStep())
	}

	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.Outcome != OutcomePassed {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if c.CurrentStep() != 1 {
		t.Errorf("currentStep = %d, want 1", c.CurrentStep())
	}
	if mock.CallCount() != 0 {
		t.Errorf("observation made %d external calls", mock.CallCount())
	}

	h := c.History()
	if len(h) != 1 {
		t.Fatalf("history len = %d", len(h))
	}
	if !h[0].Passed || h[0].StudentInput != "Skipped (Observation)" {
		t.Errorf("history entry = %+v", h[0])
	}
}

func TestAdvance_EmptyAnswerRefusedWithoutSave(t *testing.T) {
	lesson := testLesson("[NEXT] look", "[TEXT] why?", "draw a circle")
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatalf("advance observation: %v", err)
	}
	savesBefore := repo.draftCalls

	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.Outcome != OutcomeRefused {
		t.Fatalf("outcome = %v, want refused", res.Outcome)
	}
	if res.Message != "Type your answer first!" {
		t.Errorf("message = %q", res.Message)
	}
	if c.CurrentStep() != 1 {
		t.Errorf("currentStep moved to %d", c.CurrentStep())
	}
	if repo.draftCalls != savesBefore {
		t.Errorf("refusal must not save progress")
	}
}

func TestAdvance_FailedVerdictChangesNothing(t *testing.T) {
	lesson := testLesson("[TEXT] why?")
	repo := newFakeRepo()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"passed":false,"feedback":"Think about the condition."}`),
	})
	c := loadController(t, textUnit(lesson), lesson, repo, mock)

	if err := c.SetTextAnswer("magic"); err != nil {
		t.Fatal(err)
	}
	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.Message != "Think about the condition." {
		t.Errorf("message = %q", res.Message)
	}
	if c.CurrentStep() != 0 {
		t.Errorf("currentStep = %d, want 0", c.CurrentStep())
	}
	if repo.draftCalls != 0 {
		t.Errorf("failed verdict must not save, got %d saves", repo.draftCalls)
	}
	if got := c.Code(); got != "// start here" {
		t.Errorf("buffer changed: %q", got)
	}
}

func TestAdvance_HistoryOverwritesNotDuplicates(t *testing.T) {
	lesson := testLesson("[TEXT] why?", "[NEXT] done")
	repo := newFakeRepo()
	mock := llm.NewMockProvider(passResponse("Good."), passResponse("Better."))
	c := loadController(t, textUnit(lesson), lesson, repo, mock)

	if err := c.SetTextAnswer("first answer"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Rewind the cursor as a review-then-redo flow would and redo step 0.
	c.mu.Lock()
	c.currentStep = 0
	c.mu.Unlock()

	if err := c.SetTextAnswer("second answer"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}

	h := c.History()
	if len(h) != 1 {
		t.Fatalf("history has %d entries, want 1", len(h))
	}
	if h[0].StudentInput != "second answer" || h[0].Feedback != "Better." {
		t.Errorf("entry not overwritten: %+v", h[0])
	}
}

func TestAdvance_ChoiceClearsBufferOnPass(t *testing.T) {
	lesson := testLesson("[CHOICE] Pick red | A: Red | B: Blue | A", "[NEXT] done")
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if err := c.SetChoiceLetter("B"); err != nil {
		t.Fatal(err)
	}
	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeFailed || res.Message != "Not quite. The correct answer is A." {
		t.Fatalf("wrong-letter result = %+v", res)
	}

	if err := c.SetChoiceLetter("A"); err != nil {
		t.Fatal(err)
	}
	res, err = c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomePassed {
		t.Fatalf("result = %+v", res)
	}
	if c.CurrentStep() != 1 {
		t.Errorf("currentStep = %d", c.CurrentStep())
	}
}

func TestAdvance_ReflectionGate(t *testing.T) {
	lesson := testLesson("[NEXT] look")
	lesson.ReflectionQuestion = "What did you learn?"
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}

	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeAwaitingReflection {
		t.Fatalf("outcome = %v, want awaiting reflection", res.Outcome)
	}
	if repo.submitCalls != 0 {
		t.Error("must not submit before reflection answered")
	}

	// Still gated while the answer is empty.
	res, err = c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeAwaitingReflection {
		t.Fatalf("outcome = %v", res.Outcome)
	}

	if err := c.SetReflectionAnswer("loops repeat things"); err != nil {
		t.Fatal(err)
	}
	res, err = c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeSubmitted {
		t.Fatalf("outcome = %v, want submitted", res.Outcome)
	}

	saved, _ := repo.Find(context.Background(), lesson.ID, c.studentID)
	if saved.ReflectionAnswer != "loops repeat things" {
		t.Errorf("reflection answer = %q", saved.ReflectionAnswer)
	}
}

func TestSubmit_MidwayFreezesState(t *testing.T) {
	lesson := testLesson("[NEXT] one", "[NEXT] two", "[NEXT] three")
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.State() != StateSubmitted {
		t.Fatalf("state = %v", c.State())
	}

	saved, _ := repo.Find(context.Background(), lesson.ID, c.studentID)
	if saved.Status != curriculum.StatusSubmitted || saved.CurrentStep != 1 {
		t.Errorf("stored state = %+v", saved)
	}

	// Terminal monotonicity: nothing mutates after submit.
	if _, err := c.Advance(context.Background()); err != ErrReadOnly {
		t.Errorf("advance after submit: %v, want ErrReadOnly", err)
	}
	if err := c.Submit(context.Background()); err != ErrReadOnly {
		t.Errorf("submit after submit: %v, want ErrReadOnly", err)
	}
	if err := c.SetCode("hax"); err != ErrReadOnly {
		t.Errorf("set code after submit: %v, want ErrReadOnly", err)
	}

	after, _ := repo.Find(context.Background(), lesson.ID, c.studentID)
	if after.CurrentStep != 1 || after.Code != saved.Code {
		t.Errorf("state changed after terminal: %+v", after)
	}

	// Review stays available for completed steps only.
	if _, err := c.Review(0); err != nil {
		t.Errorf("review completed step: %v", err)
	}
}

func TestReview_RejectsUncompletedSteps(t *testing.T) {
	lesson := testLesson("[NEXT] one", "[NEXT] two")
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if _, err := c.Review(0); err == nil {
		t.Error("review of uncompleted step must fail")
	}

	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}
	h, err := c.Review(0)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if h.StepIndex != 0 {
		t.Errorf("reviewed entry = %+v", h)
	}
	if _, err := c.Review(1); err == nil {
		t.Error("cannot preview the step at the cursor")
	}
}

func TestLoad_ResumesExistingSubmission(t *testing.T) {
	lesson := testLesson("[NEXT] one", "[NEXT] two", "[NEXT] three")
	repo := newFakeRepo()
	studentID := uuid.New()
	_, err := repo.UpsertDraft(context.Background(), lesson.ID, studentID, store.DraftPatch{
		Code:        "saved work",
		CurrentStep: 2,
		HistoryItem: &store.StepHistory{StepIndex: 0, Passed: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := New(textUnit(lesson), lesson, studentID, repo, grader.New(llm.NewMockProvider()))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.CurrentStep() != 2 {
		t.Errorf("currentStep = %d, want 2", c.CurrentStep())
	}
	if c.Code() != "saved work" {
		t.Errorf("code = %q", c.Code())
	}
}

func TestLoad_ContinuitySeedsSharedProject(t *testing.T) {
	prior := testLesson("[NEXT] a")
	next := testLesson("[NEXT] b")
	next.ReferenceProject = "static reference"
	unit := curriculum.Unit{
		ID:            7,
		Name:          "Scratch stories",
		Editor:        curriculum.EditorBlocks,
		SharesProject: true,
		Lessons:       []curriculum.Lesson{prior, next},
	}

	repo := newFakeRepo()
	repo.lessonUnits[prior.ID] = unit.ID
	repo.lessonUnits[next.ID] = unit.ID
	studentID := uuid.New()
	_, err := repo.UpsertDraft(context.Background(), prior.ID, studentID, store.DraftPatch{
		Code:        "evolved project",
		CurrentStep: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	c := New(unit, next, studentID, repo, grader.New(llm.NewMockProvider()))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Code() != "evolved project" {
		t.Errorf("seeded %q, want continuity code", c.Code())
	}
	// Continuity seeds content only, never the cursor.
	if c.CurrentStep() != 0 {
		t.Errorf("currentStep = %d, want 0", c.CurrentStep())
	}
}

func TestLoad_NoContinuityForTextEditor(t *testing.T) {
	prior := testLesson("[NEXT] a")
	next := testLesson("[NEXT] b")
	unit := curriculum.Unit{
		ID:            8,
		Name:          "Python basics",
		Editor:        curriculum.EditorText,
		SharesProject: true,
		Lessons:       []curriculum.Lesson{prior, next},
	}

	repo := newFakeRepo()
	repo.lessonUnits[prior.ID] = unit.ID
	repo.lessonUnits[next.ID] = unit.ID
	studentID := uuid.New()
	if _, err := repo.UpsertDraft(context.Background(), prior.ID, studentID, store.DraftPatch{Code: "other lesson"}); err != nil {
		t.Fatal(err)
	}

	c := New(unit, next, studentID, repo, grader.New(llm.NewMockProvider()))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Code() != "// start here" {
		t.Errorf("text lessons must seed starter code, got %q", c.Code())
	}
}

func TestLoad_MalformedStepAttributableByIndex(t *testing.T) {
	lesson := testLesson("[NEXT] fine", "[CHOICE] broken | A", "[NEXT] also fine")
	repo := newFakeRepo()
	c := loadController(t, textUnit(lesson), lesson, repo, llm.NewMockProvider())

	if _, err := c.Step(0); err != nil {
		t.Errorf("step 0 should parse: %v", err)
	}
	if _, err := c.Step(1); err == nil {
		t.Error("step 1 should carry its parse error")
	}
	if _, err := c.Step(2); err != nil {
		t.Errorf("step 2 should parse: %v", err)
	}
}

func TestClose_FlushesPendingAutosave(t *testing.T) {
	lesson := testLesson("[NEXT] a")
	lesson.ReferenceProject = "seed"
	unit := curriculum.Unit{ID: 9, Name: "Blocks", Editor: curriculum.EditorBlocks, Lessons: []curriculum.Lesson{lesson}}

	repo := newFakeRepo()
	c := loadController(t, unit, lesson, repo, llm.NewMockProvider())

	if err := c.SetCode("edited project"); err != nil {
		t.Fatal(err)
	}
	// The debounce window has not elapsed; Close must flush synchronously.
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	saved, _ := repo.Find(context.Background(), lesson.ID, c.studentID)
	if saved == nil || saved.Code != "edited project" {
		t.Fatalf("autosave not flushed: %+v", saved)
	}
	if len(saved.History) != 0 {
		t.Error("autosave must never create history")
	}
	if saved.CurrentStep != 0 {
		t.Errorf("autosave changed currentStep to %d", saved.CurrentStep)
	}

	if _, err := c.Advance(context.Background()); err != ErrClosed {
		t.Errorf("advance after close: %v, want ErrClosed", err)
	}
}

func TestAutosaveFailureWarnsAndSessionContinues(t *testing.T) {
	lesson := testLesson("[NEXT] a")
	unit := curriculum.Unit{ID: 10, Name: "Blocks", Editor: curriculum.EditorBlocks, Lessons: []curriculum.Lesson{lesson}}

	repo := newFakeRepo()
	c := loadController(t, unit, lesson, repo, llm.NewMockProvider())

	if err := c.SetCode("edited"); err != nil {
		t.Fatal(err)
	}

	repo.failDrafts = true
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	c.autosaveFire()
	os.Stderr = orig
	_ = w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "autosave") {
		t.Errorf("expected an autosave warning on stderr, got %q", out)
	}

	// The session keeps working once the store recovers.
	repo.failDrafts = false
	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance after failed autosave: %v", err)
	}
	if res.Outcome != OutcomePassed {
		t.Errorf("outcome = %v", res.Outcome)
	}
}

func TestAssignment_AdvancesWithoutValidator(t *testing.T) {
	lesson := testLesson("[CODE] build your own game")
	lesson.Type = curriculum.TypeAssignment
	lesson.IsAIGuided = false
	repo := newFakeRepo()
	mock := llm.NewMockProvider()
	c := loadController(t, textUnit(lesson), lesson, repo, mock)

	if err := c.SetCode("my game"); err != nil {
		t.Fatal(err)
	}
	res, err := c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomePassed {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if mock.CallCount() != 0 {
		t.Errorf("assignments must not call the validator, got %d calls", mock.CallCount())
	}
	h := c.History()
	if len(h) != 1 || h[0].StudentInput != "my game" {
		t.Errorf("history = %+v", h)
	}
}
