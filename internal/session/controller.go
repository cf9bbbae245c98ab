package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
	"github.com/codelane/coderoom/internal/grader"
	"github.com/codelane/coderoom/internal/step"
	"github.com/codelane/coderoom/internal/store"
)

// State is the lifecycle of one active lesson session.
type State int

const (
	// StateInProgress means the student is working through steps.
	StateInProgress State = iota
	// StateAwaitingReflection means all steps are done and the lesson's
	// reflection question must be answered before submitting.
	StateAwaitingReflection
	// StateSubmitted means the submission is terminal and the session is
	// read-only.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateAwaitingReflection:
		return "awaiting reflection"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Outcome classifies what one Advance call did.
type Outcome int

const (
	// OutcomeRefused means the transition was rejected locally (empty
	// required input, malformed step); nothing was saved.
	OutcomeRefused Outcome = iota
	// OutcomePassed means the step passed and the session advanced.
	OutcomePassed
	// OutcomeFailed means the validator rejected the input; the session
	// stays on the same step and nothing was saved.
	OutcomeFailed
	// OutcomeAwaitingReflection means all steps are done and the reflection
	// question is now pending.
	OutcomeAwaitingReflection
	// OutcomeSubmitted means the lesson was submitted.
	OutcomeSubmitted
)

// Result reports the outcome of an Advance call. Message carries the
// refusal text or the validator's feedback.
type Result struct {
	Outcome Outcome
	Message string
}

var (
	// ErrReadOnly is returned for mutations after the submission turned
	// terminal.
	ErrReadOnly = errors.New("session is read-only")
	// ErrClosed is returned once the session has been closed; results of
	// in-flight calls that complete after Close are discarded with it.
	ErrClosed = errors.New("session closed")
)

const (
	msgEmptyAnswer     = "Type your answer first!"
	msgEmptyChoice     = "Pick an answer first!"
	msgEmptyReflection = "Answer the reflection question to finish!"

	skippedObservation = "Skipped (Observation)"

	// autosaveDelay is the debounce window for the blocks-editor safety-net
	// save. Not a contract, just long enough to coalesce bursts of edits.
	autosaveDelay = 2 * time.Second
)

// Controller drives one student's session on one lesson. It owns the step
// cursor, the input buffers, and all writes to the submission row; writes
// are serialized under one mutex so the debounced auto-save can never
// overwrite a concurrent step advancement.
type Controller struct {
	unit      curriculum.Unit
	lesson    curriculum.Lesson
	studentID uuid.UUID
	subs      store.SubmissionRepo
	gateway   *grader.Gateway

	mu    sync.Mutex
	state State
	// steps are parsed once at load; stepErrs holds per-index parse errors
	// for steps that do not conform to the wire grammar.
	steps    []step.Step
	stepErrs map[int]error

	currentStep      int
	code             string
	seededCode       string
	textAnswer       string
	choiceLetter     string
	reflectionAnswer string
	history          []store.StepHistory

	autosave *time.Timer
	closed   bool
}

// New creates an unloaded controller. Call Load before anything else.
func New(unit curriculum.Unit, lesson curriculum.Lesson, studentID uuid.UUID, subs store.SubmissionRepo, gateway *grader.Gateway) *Controller {
	return &Controller{
		unit:      unit,
		lesson:    lesson,
		studentID: studentID,
		subs:      subs,
		gateway:   gateway,
		stepErrs:  make(map[int]error),
	}
}

// Load resolves the existing submission and seeds the session.
//
// Lookup order: direct (lesson, student) row first; for blocks units whose
// lessons share one evolving project, fall back to the most recent
// submission anywhere in the unit so the student resumes the shared project
// rather than the lesson's static starter content. Editor content seeds
// from, in priority order: own submission code, continuity code, lesson
// seed content.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, raw := range c.lesson.Steps {
		s, err := step.Parse(raw)
		if err != nil {
			c.stepErrs[i] = err
		}
		c.steps = append(c.steps, s)
	}

	existing, err := c.subs.Find(ctx, c.lesson.ID, c.studentID)
	if err != nil {
		return fmt.Errorf("load submission: %w", err)
	}

	switch {
	case existing != nil && existing.Code != "":
		c.code = existing.Code
	case existing == nil && c.unit.SharesProject && c.unit.Editor == curriculum.EditorBlocks:
		prior, err := c.subs.MostRecentInUnit(ctx, c.unit.ID, c.studentID, c.lesson.ID)
		if err != nil {
			return fmt.Errorf("continuity lookup: %w", err)
		}
		if prior != nil && prior.Code != "" {
			c.code = prior.Code
		} else {
			c.code = c.lesson.SeedContent(c.unit.Editor)
		}
	default:
		c.code = c.lesson.SeedContent(c.unit.Editor)
	}
	c.seededCode = c.code

	if existing != nil {
		c.currentStep = existing.CurrentStep
		c.textAnswer = existing.TextAnswer
		c.reflectionAnswer = existing.ReflectionAnswer
		c.history = existing.History
		if existing.Status.Terminal() {
			c.state = StateSubmitted
			return nil
		}
	}
	c.state = StateInProgress
	return nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ReadOnly reports whether the session rejects mutations.
func (c *Controller) ReadOnly() bool {
	return c.State() == StateSubmitted
}

// CurrentStep returns the index of the next incomplete step.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentStep
}

// StepCount returns the number of steps in the lesson.
func (c *Controller) StepCount() int {
	return len(c.lesson.Steps)
}

// Step returns the parsed step at index, or the parse error recorded for it.
func (c *Controller) Step(index int) (step.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.steps) {
		return step.Step{}, fmt.Errorf("step %d out of range", index)
	}
	if err := c.stepErrs[index]; err != nil {
		return step.Step{}, err
	}
	return c.steps[index], nil
}

// Lesson returns the lesson this session runs.
func (c *Controller) Lesson() curriculum.Lesson { return c.lesson }

// Code returns the current editor buffer.
func (c *Controller) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// History returns the completed-step records, at most one per step index.
func (c *Controller) History() []store.StepHistory {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]store.StepHistory, len(c.history))
	copy(out, c.history)
	return out
}

// SetCode replaces the editor buffer. For blocks lessons it also arms the
// debounced safety-net save, which persists the buffer without touching
// currentStep semantics or history.
func (c *Controller) SetCode(code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitted {
		return ErrReadOnly
	}
	if c.closed {
		return ErrClosed
	}
	c.code = code
	if c.unit.Editor == curriculum.EditorBlocks && code != c.seededCode {
		c.armAutosaveLocked()
	}
	return nil
}

// SetTextAnswer replaces the free-text answer buffer.
func (c *Controller) SetTextAnswer(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitted {
		return ErrReadOnly
	}
	c.textAnswer = text
	return nil
}

// SetChoiceLetter replaces the selected choice letter.
func (c *Controller) SetChoiceLetter(letter string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitted {
		return ErrReadOnly
	}
	c.choiceLetter = letter
	return nil
}

// SetReflectionAnswer replaces the reflection answer buffer.
func (c *Controller) SetReflectionAnswer(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitted {
		return ErrReadOnly
	}
	c.reflectionAnswer = text
	return nil
}

// Advance is the student's explicit "next/check" action.
//
// Past the last step it either gates on the reflection question or submits.
// On a step it validates the current input through the gateway: a pass
// records a history entry and persists the advancement in one write; a fail
// changes nothing durable. Empty required input is refused locally without
// calling the validator or the store.
func (c *Controller) Advance(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Result{}, ErrClosed
	}
	if c.state == StateSubmitted {
		c.mu.Unlock()
		return Result{}, ErrReadOnly
	}

	if c.state == StateAwaitingReflection || c.currentStep >= len(c.steps) {
		return c.finishLocked(ctx)
	}

	index := c.currentStep
	if err := c.stepErrs[index]; err != nil {
		c.mu.Unlock()
		return Result{}, fmt.Errorf("step %d: %w", index, err)
	}
	s := c.steps[index]

	if c.state == StateInProgress && s.Kind.RequiresInput() {
		if s.Kind == step.KindQuestion && c.textAnswer == "" {
			c.mu.Unlock()
			return Result{Outcome: OutcomeRefused, Message: msgEmptyAnswer}, nil
		}
		if s.Kind == step.KindChoice && c.choiceLetter == "" {
			c.mu.Unlock()
			return Result{Outcome: OutcomeRefused, Message: msgEmptyChoice}, nil
		}
	}

	sc := grader.StepContext{
		Code:         c.code,
		TextAnswer:   c.textAnswer,
		ChoiceLetter: c.choiceLetter,
		AIGuided:     c.lesson.IsAIGuided,
	}
	c.mu.Unlock()

	// The gateway call runs unlocked so a slow validator never blocks
	// buffer edits or the auto-save.
	verdict, err := c.gateway.CheckStep(ctx, s, sc)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The session may have moved (navigation away, explicit submit) while
	// validation was in flight; stale verdicts are discarded.
	if c.closed {
		return Result{}, ErrClosed
	}
	if c.state != StateInProgress || c.currentStep != index {
		return Result{}, ErrClosed
	}

	if !verdict.Passed {
		return Result{Outcome: OutcomeFailed, Message: verdict.Feedback}, nil
	}

	item := store.StepHistory{
		StepIndex:    index,
		StudentInput: studentInput(s, sc),
		Feedback:     verdict.Feedback,
		Passed:       true,
	}
	saved, err := c.subs.UpsertDraft(ctx, c.lesson.ID, c.studentID, store.DraftPatch{
		Code:        c.code,
		TextAnswer:  c.textAnswer,
		CurrentStep: index + 1,
		HistoryItem: &item,
	})
	if err != nil {
		return Result{}, fmt.Errorf("save progress: %w", err)
	}

	c.currentStep = index + 1
	c.history = saved.History
	c.textAnswer = ""
	c.choiceLetter = ""
	return Result{Outcome: OutcomePassed, Message: verdict.Feedback}, nil
}

// finishLocked handles the terminal edge past the last step. Caller holds
// the mutex; it is released before returning.
func (c *Controller) finishLocked(ctx context.Context) (Result, error) {
	if c.lesson.ReflectionQuestion != "" && c.reflectionAnswer == "" {
		c.state = StateAwaitingReflection
		c.mu.Unlock()
		return Result{Outcome: OutcomeAwaitingReflection, Message: msgEmptyReflection}, nil
	}
	if err := c.submitLocked(ctx); err != nil {
		c.mu.Unlock()
		return Result{}, err
	}
	c.mu.Unlock()
	return Result{Outcome: OutcomeSubmitted}, nil
}

// Review returns the history entry for an already-completed step. Steps at
// or past the cursor cannot be previewed.
func (c *Controller) Review(index int) (store.StepHistory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index >= c.currentStep && c.state == StateInProgress {
		return store.StepHistory{}, fmt.Errorf("step %d not completed yet", index)
	}
	for _, h := range c.history {
		if h.StepIndex == index {
			return h, nil
		}
	}
	return store.StepHistory{}, fmt.Errorf("no history for step %d", index)
}

// Submit finalizes the lesson with whatever is currently buffered. Early
// and incomplete submission is allowed; submitting a terminal session is
// rejected.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.state == StateSubmitted {
		return ErrReadOnly
	}
	return c.submitLocked(ctx)
}

func (c *Controller) submitLocked(ctx context.Context) error {
	c.stopAutosaveLocked()
	_, err := c.subs.UpsertSubmitted(ctx, c.lesson.ID, c.studentID, store.SubmitPatch{
		Code:             c.code,
		TextAnswer:       c.textAnswer,
		ReflectionAnswer: c.reflectionAnswer,
		CurrentStep:      c.currentStep,
	})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	c.state = StateSubmitted
	return nil
}

// Close flushes any pending auto-save and invalidates the session. Results
// of validations still in flight are discarded when they land.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	pending := c.autosave != nil && c.autosave.Stop()
	c.autosave = nil
	if pending && c.state != StateSubmitted {
		return c.saveBufferLocked(ctx)
	}
	return nil
}

// armAutosaveLocked (re)starts the debounce timer. Caller holds the mutex.
func (c *Controller) armAutosaveLocked() {
	if c.autosave != nil {
		c.autosave.Stop()
	}
	c.autosave = time.AfterFunc(autosaveDelay, c.autosaveFire)
}

// autosaveFire runs when the debounce window elapses. A failed save is a
// missed safety net, not a session error, so it only warns on stderr.
func (c *Controller) autosaveFire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state == StateSubmitted {
		return
	}
	// currentStep is read here at fire time, under the same mutex that
	// serializes Advance's writes, so this save can never roll back an
	// advancement that happened after the timer was armed.
	if err := c.saveBufferLocked(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func (c *Controller) stopAutosaveLocked() {
	if c.autosave != nil {
		c.autosave.Stop()
		c.autosave = nil
	}
}

// saveBufferLocked persists the buffers without a history item. Caller
// holds the mutex.
func (c *Controller) saveBufferLocked(ctx context.Context) error {
	_, err := c.subs.UpsertDraft(ctx, c.lesson.ID, c.studentID, store.DraftPatch{
		Code:        c.code,
		TextAnswer:  c.textAnswer,
		CurrentStep: c.currentStep,
	})
	if err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

// studentInput picks the recorded input for a history entry.
func studentInput(s step.Step, sc grader.StepContext) string {
	if s.Kind == step.KindObservation {
		return skippedObservation
	}
	return sc.Input(s.Kind)
}
