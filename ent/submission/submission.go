// Code generated by ent, DO NOT EDIT.

package submission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldTextAnswer holds the string denoting the text_answer field in the database.
	FieldTextAnswer = "text_answer"
	// FieldReflectionAnswer holds the string denoting the reflection_answer field in the database.
	FieldReflectionAnswer = "reflection_answer"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldFeedbackComment holds the string denoting the feedback_comment field in the database.
	FieldFeedbackComment = "feedback_comment"
	// FieldGradedAt holds the string denoting the graded_at field in the database.
	FieldGradedAt = "graded_at"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldStudentID,
	FieldStatus,
	FieldCurrentStep,
	FieldCode,
	FieldTextAnswer,
	FieldReflectionAnswer,
	FieldHistory,
	FieldGrade,
	FieldFeedbackComment,
	FieldGradedAt,
	FieldSubmittedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultCode holds the default value on creation for the "code" field.
	DefaultCode string
	// DefaultTextAnswer holds the default value on creation for the "text_answer" field.
	DefaultTextAnswer string
	// DefaultReflectionAnswer holds the default value on creation for the "reflection_answer" field.
	DefaultReflectionAnswer string
	// DefaultFeedbackComment holds the default value on creation for the "feedback_comment" field.
	DefaultFeedbackComment string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusGraded    Status = "graded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusSubmitted, StatusGraded:
		return nil
	default:
		return fmt.Errorf("submission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByTextAnswer orders the results by the text_answer field.
func ByTextAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextAnswer, opts...).ToFunc()
}

// ByReflectionAnswer orders the results by the reflection_answer field.
func ByReflectionAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionAnswer, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByFeedbackComment orders the results by the feedback_comment field.
func ByFeedbackComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackComment, opts...).ToFunc()
}

// ByGradedAt orders the results by the graded_at field.
func ByGradedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradedAt, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
