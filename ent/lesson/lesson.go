// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLessonType holds the string denoting the lesson_type field in the database.
	FieldLessonType = "lesson_type"
	// FieldIsAiGuided holds the string denoting the is_ai_guided field in the database.
	FieldIsAiGuided = "is_ai_guided"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldStarterCode holds the string denoting the starter_code field in the database.
	FieldStarterCode = "starter_code"
	// FieldReferenceProject holds the string denoting the reference_project field in the database.
	FieldReferenceProject = "reference_project"
	// FieldReflectionQuestion holds the string denoting the reflection_question field in the database.
	FieldReflectionQuestion = "reflection_question"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeUnit holds the string denoting the unit edge name in mutations.
	EdgeUnit = "unit"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
	// UnitTable is the table that holds the unit relation/edge.
	UnitTable = "lessons"
	// UnitInverseTable is the table name for the Unit entity.
	// It exists in this package in order to avoid circular dependency with the "unit" package.
	UnitInverseTable = "units"
	// UnitColumn is the table column denoting the unit relation/edge.
	UnitColumn = "unit_lessons"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldLessonType,
	FieldIsAiGuided,
	FieldSteps,
	FieldStarterCode,
	FieldReferenceProject,
	FieldReflectionQuestion,
	FieldPosition,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "lessons"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"unit_lessons",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsAiGuided holds the default value on creation for the "is_ai_guided" field.
	DefaultIsAiGuided bool
	// DefaultStarterCode holds the default value on creation for the "starter_code" field.
	DefaultStarterCode string
	// DefaultReferenceProject holds the default value on creation for the "reference_project" field.
	DefaultReferenceProject string
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// LessonType defines the type for the "lesson_type" enum field.
type LessonType string

// LessonTypeLesson is the default value of the LessonType enum.
const DefaultLessonType = LessonTypeLesson

// LessonType values.
const (
	LessonTypeLesson     LessonType = "lesson"
	LessonTypeAssignment LessonType = "assignment"
)

func (lt LessonType) String() string {
	return string(lt)
}

// LessonTypeValidator is a validator for the "lesson_type" field enum values. It is called by the builders before save.
func LessonTypeValidator(lt LessonType) error {
	switch lt {
	case LessonTypeLesson, LessonTypeAssignment:
		return nil
	default:
		return fmt.Errorf("lesson: invalid enum value for lesson_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLessonType orders the results by the lesson_type field.
func ByLessonType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonType, opts...).ToFunc()
}

// ByIsAiGuided orders the results by the is_ai_guided field.
func ByIsAiGuided(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAiGuided, opts...).ToFunc()
}

// ByStarterCode orders the results by the starter_code field.
func ByStarterCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStarterCode, opts...).ToFunc()
}

// ByReferenceProject orders the results by the reference_project field.
func ByReferenceProject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceProject, opts...).ToFunc()
}

// ByReflectionQuestion orders the results by the reflection_question field.
func ByReflectionQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionQuestion, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByUnitField orders the results by unit field.
func ByUnitField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnitStep(), sql.OrderByField(field, opts...))
	}
}
func newUnitStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnitInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UnitTable, UnitColumn),
	)
}
