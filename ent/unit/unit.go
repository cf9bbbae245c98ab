// Code generated by ent, DO NOT EDIT.

package unit

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the unit type in the database.
	Label = "unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldIsLocked holds the string denoting the is_locked field in the database.
	FieldIsLocked = "is_locked"
	// FieldIsSequential holds the string denoting the is_sequential field in the database.
	FieldIsSequential = "is_sequential"
	// FieldAvailableAt holds the string denoting the available_at field in the database.
	FieldAvailableAt = "available_at"
	// FieldEditor holds the string denoting the editor field in the database.
	FieldEditor = "editor"
	// FieldSharesProject holds the string denoting the shares_project field in the database.
	FieldSharesProject = "shares_project"
	// EdgeLessons holds the string denoting the lessons edge name in mutations.
	EdgeLessons = "lessons"
	// Table holds the table name of the unit in the database.
	Table = "units"
	// LessonsTable is the table that holds the lessons relation/edge.
	LessonsTable = "lessons"
	// LessonsInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonsInverseTable = "lessons"
	// LessonsColumn is the table column denoting the lessons relation/edge.
	LessonsColumn = "unit_lessons"
)

// Columns holds all SQL columns for unit fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPosition,
	FieldIsLocked,
	FieldIsSequential,
	FieldAvailableAt,
	FieldEditor,
	FieldSharesProject,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultIsLocked holds the default value on creation for the "is_locked" field.
	DefaultIsLocked bool
	// DefaultIsSequential holds the default value on creation for the "is_sequential" field.
	DefaultIsSequential bool
	// DefaultSharesProject holds the default value on creation for the "shares_project" field.
	DefaultSharesProject bool
)

// Editor defines the type for the "editor" enum field.
type Editor string

// EditorText is the default value of the Editor enum.
const DefaultEditor = EditorText

// Editor values.
const (
	EditorBlocks Editor = "blocks"
	EditorText   Editor = "text"
)

func (e Editor) String() string {
	return string(e)
}

// EditorValidator is a validator for the "editor" field enum values. It is called by the builders before save.
func EditorValidator(e Editor) error {
	switch e {
	case EditorBlocks, EditorText:
		return nil
	default:
		return fmt.Errorf("unit: invalid enum value for editor field: %q", e)
	}
}

// OrderOption defines the ordering options for the Unit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByIsLocked orders the results by the is_locked field.
func ByIsLocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLocked, opts...).ToFunc()
}

// ByIsSequential orders the results by the is_sequential field.
func ByIsSequential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSequential, opts...).ToFunc()
}

// ByAvailableAt orders the results by the available_at field.
func ByAvailableAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableAt, opts...).ToFunc()
}

// ByEditor orders the results by the editor field.
func ByEditor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditor, opts...).ToFunc()
}

// BySharesProject orders the results by the shares_project field.
func BySharesProject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharesProject, opts...).ToFunc()
}

// ByLessonsCount orders the results by lessons count.
func ByLessonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLessonsStep(), opts...)
	}
}

// ByLessons orders the results by lessons terms.
func ByLessons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLessonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
	)
}
