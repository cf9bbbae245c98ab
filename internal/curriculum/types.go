package curriculum

import (
	"time"

	"github.com/google/uuid"
)

// EditorType selects the embedded editor used by a unit's lessons.
type EditorType string

const (
	// EditorBlocks is the visual block-programming editor.
	EditorBlocks EditorType = "blocks"
	// EditorText is the plain text/code editor.
	EditorText EditorType = "text"
)

// LessonType distinguishes guided lessons from independent assignments.
type LessonType string

const (
	TypeLesson     LessonType = "lesson"
	TypeAssignment LessonType = "assignment"
)

// SubmissionStatus is the one-way submission lifecycle. Defined here so the
// lock evaluator can reason about it without depending on the store.
type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"
	StatusSubmitted SubmissionStatus = "submitted"
	StatusGraded    SubmissionStatus = "graded"
)

// Complete reports whether the status counts as a finished lesson for
// sequential gating.
func (s SubmissionStatus) Complete() bool {
	return s == StatusSubmitted || s == StatusGraded
}

// Terminal reports whether the submission can no longer be modified by the
// student.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusSubmitted || s == StatusGraded
}

// Unit is a named grouping of lessons with gating rules.
type Unit struct {
	ID           int
	Name         string
	Position     int
	IsLocked     bool
	IsSequential bool
	// AvailableAt makes the unit behave as locked before this time.
	AvailableAt *time.Time
	Editor      EditorType
	// SharesProject marks blocks units whose lessons evolve one shared
	// project. Enables the store's continuity lookup.
	SharesProject bool
	// Lessons is ordered; the order drives sequential gating.
	Lessons []Lesson
}

// Lesson is one ordered sequence of steps a student completes.
type Lesson struct {
	ID     uuid.UUID
	UnitID int // 0 = unassigned
	Title  string
	Type   LessonType
	// IsAIGuided enables automated step validation. Always false for
	// assignments.
	IsAIGuided bool
	// Steps are raw instruction strings in the step wire grammar.
	Steps            []string
	StarterCode      string
	ReferenceProject string
	// ReflectionQuestion, when set, is asked after the last step and must
	// be answered before the final submit.
	ReflectionQuestion string
	Position           int
}

// SeedContent returns the editor content a fresh session starts from when
// no prior submission exists: the reference project for blocks lessons,
// otherwise the starter code.
func (l Lesson) SeedContent(editor EditorType) string {
	if editor == EditorBlocks && l.ReferenceProject != "" {
		return l.ReferenceProject
	}
	return l.StarterCode
}
