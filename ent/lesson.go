// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/unit"
	"github.com/google/uuid"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Assignments are independent work, never AI-graded
	LessonType lesson.LessonType `json:"lesson_type,omitempty"`
	// When false, step advancement skips automated validation
	IsAiGuided bool `json:"is_ai_guided,omitempty"`
	// Ordered step instructions in the wire grammar: "[TAG] body"
	Steps []string `json:"steps,omitempty"`
	// StarterCode holds the value of the "starter_code" field.
	StarterCode string `json:"starter_code,omitempty"`
	// Blocks-editor content seed, preferred over starter_code
	ReferenceProject string `json:"reference_project,omitempty"`
	// Free-text prompt shown after all steps are complete
	ReflectionQuestion string `json:"reflection_question,omitempty"`
	// Order within the unit; significant for sequential gating
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonQuery when eager-loading is set.
	Edges        LessonEdges `json:"edges"`
	unit_lessons *int
	selectValues sql.SelectValues
}

// LessonEdges holds the relations/edges for other nodes in the graph.
type LessonEdges struct {
	// Unit holds the value of the unit edge.
	Unit *Unit `json:"unit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UnitOrErr returns the Unit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) UnitOrErr() (*Unit, error) {
	if e.Unit != nil {
		return e.Unit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: unit.Label}
	}
	return nil, &NotLoadedError{edge: "unit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldSteps:
			values[i] = new([]byte)
		case lesson.FieldIsAiGuided:
			values[i] = new(sql.NullBool)
		case lesson.FieldPosition:
			values[i] = new(sql.NullInt64)
		case lesson.FieldTitle, lesson.FieldLessonType, lesson.FieldStarterCode, lesson.FieldReferenceProject, lesson.FieldReflectionQuestion:
			values[i] = new(sql.NullString)
		case lesson.FieldID:
			values[i] = new(uuid.UUID)
		case lesson.ForeignKeys[0]: // unit_lessons
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (_m *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lesson.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lesson.FieldLessonType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_type", values[i])
			} else if value.Valid {
				_m.LessonType = lesson.LessonType(value.String)
			}
		case lesson.FieldIsAiGuided:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_ai_guided", values[i])
			} else if value.Valid {
				_m.IsAiGuided = value.Bool
			}
		case lesson.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case lesson.FieldStarterCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field starter_code", values[i])
			} else if value.Valid {
				_m.StarterCode = value.String
			}
		case lesson.FieldReferenceProject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_project", values[i])
			} else if value.Valid {
				_m.ReferenceProject = value.String
			}
		case lesson.FieldReflectionQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection_question", values[i])
			} else if value.Valid {
				_m.ReflectionQuestion = value.String
			}
		case lesson.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case lesson.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field unit_lessons", value)
			} else if value.Valid {
				_m.unit_lessons = new(int)
				*_m.unit_lessons = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (_m *Lesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUnit queries the "unit" edge of the Lesson entity.
func (_m *Lesson) QueryUnit() *UnitQuery {
	return NewLessonClient(_m.config).QueryUnit(_m)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lesson) Unwrap() *Lesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("lesson_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonType))
	builder.WriteString(", ")
	builder.WriteString("is_ai_guided=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAiGuided))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("starter_code=")
	builder.WriteString(_m.StarterCode)
	builder.WriteString(", ")
	builder.WriteString("reference_project=")
	builder.WriteString(_m.ReferenceProject)
	builder.WriteString(", ")
	builder.WriteString("reflection_question=")
	builder.WriteString(_m.ReflectionQuestion)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
