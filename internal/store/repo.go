package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/internal/curriculum"
)

// ErrNotFound is returned by lookups that require an existing record.
var ErrNotFound = errors.New("not found")

// StepHistory is the immutable-once-written record of one completed step.
type StepHistory struct {
	StepIndex    int    `json:"stepIndex"`
	StudentInput string `json:"studentInput"`
	Feedback     string `json:"feedback"`
	Passed       bool   `json:"passed"`
}

// Submission is the durable progress/result record for one
// (lesson, student) pair. At most one exists per pair.
type Submission struct {
	LessonID  uuid.UUID
	StudentID uuid.UUID
	Status    curriculum.SubmissionStatus
	// CurrentStep indexes the next incomplete step; equal to len(steps)
	// means all steps are complete.
	CurrentStep      int
	Code             string
	TextAnswer       string
	ReflectionAnswer string
	// History holds at most one entry per step index. Re-completing a
	// step overwrites, never appends.
	History []StepHistory
	// Grading fields, set only once Status is graded.
	Grade           *float64
	FeedbackComment string
	GradedAt        *time.Time
	SubmittedAt     *time.Time
	UpdatedAt       time.Time
}

// HistoryAt returns the history entry for the given step index, if any.
func (s *Submission) HistoryAt(index int) (StepHistory, bool) {
	for _, h := range s.History {
		if h.StepIndex == index {
			return h, true
		}
	}
	return StepHistory{}, false
}

// DraftPatch carries the fields a progress save may update.
type DraftPatch struct {
	Code        string
	TextAnswer  string
	CurrentStep int
	// HistoryItem, when non-nil, replaces any existing entry with the
	// same StepIndex or is appended if none exists.
	HistoryItem *StepHistory
}

// SubmitPatch carries the final content recorded at submit time.
type SubmitPatch struct {
	Code             string
	TextAnswer       string
	ReflectionAnswer string
	CurrentStep      int
}

// SubmissionRepo is the progress store adapter. It is the only component
// permitted to construct a new submission identity, and it enforces the
// one-row-per-(lesson, student) invariant via find-before-write.
type SubmissionRepo interface {
	// Find returns the submission for the pair, or (nil, nil) if absent.
	Find(ctx context.Context, lessonID, studentID uuid.UUID) (*Submission, error)

	// MostRecentInUnit returns the most recently updated submission the
	// student has on any lesson of the unit, excluding the given lesson.
	// Used only for shared-project blocks units (continuity lookup).
	// Returns (nil, nil) when the student has none.
	MostRecentInUnit(ctx context.Context, unitID int, studentID, excludingLesson uuid.UUID) (*Submission, error)

	// UpsertDraft creates or updates the draft submission for the pair.
	UpsertDraft(ctx context.Context, lessonID, studentID uuid.UUID, patch DraftPatch) (*Submission, error)

	// UpsertSubmitted marks the submission as submitted with the given
	// final content, creating the row directly in submitted state when
	// none exists. Submissions already submitted or graded are returned
	// unchanged.
	UpsertSubmitted(ctx context.Context, lessonID, studentID uuid.UUID, patch SubmitPatch) (*Submission, error)

	// StatusesByLesson returns the student's submission status for every
	// lesson they have a submission on. Input to the lock evaluator.
	StatusesByLesson(ctx context.Context, studentID uuid.UUID) (map[uuid.UUID]curriculum.SubmissionStatus, error)

	// CountByStatus aggregates the student's submissions by status.
	CountByStatus(ctx context.Context, studentID uuid.UUID) (map[curriculum.SubmissionStatus]int, error)

	// DeleteByStudent removes all of the student's submissions.
	DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int, error)
}

// UnitRepo provides read access to the imported curriculum and the import
// write path.
type UnitRepo interface {
	// List returns all units ordered by position, each with its lessons
	// ordered by position.
	List(ctx context.Context) ([]curriculum.Unit, error)

	// GetLesson returns one lesson with its unit ID resolved.
	GetLesson(ctx context.Context, id uuid.UUID) (*curriculum.Lesson, error)

	// GetUnit returns one unit with its ordered lessons.
	GetUnit(ctx context.Context, id int) (*curriculum.Unit, error)

	// Import writes units and their lessons transactionally.
	Import(ctx context.Context, units []curriculum.Unit) error

	// SaveLesson inserts a single authored lesson, optionally into a unit
	// (unitID 0 = unassigned).
	SaveLesson(ctx context.Context, lesson curriculum.Lesson) (uuid.UUID, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
