package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Submission is the single durable record of one student's relationship to
// one lesson. At most one row exists per (lesson_id, student_id).
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("lesson_id", uuid.UUID{}),
		field.UUID("student_id", uuid.UUID{}),
		field.Enum("status").
			Values("draft", "submitted", "graded").
			Default("draft").
			Comment("One-way lifecycle: draft -> submitted -> graded"),
		field.Int("current_step").
			Default(0).
			Comment("Index of the next incomplete step; len(steps) = all done"),
		field.Text("code").
			Default(""),
		field.Text("text_answer").
			Default(""),
		field.Text("reflection_answer").
			Default(""),
		field.JSON("history", []map[string]any{}).
			Optional().
			Comment("Completed step records, at most one per step index"),
		field.Float("grade").
			Optional().
			Nillable(),
		field.Text("feedback_comment").
			Default(""),
		field.Time("graded_at").
			Optional().
			Nillable(),
		field.Time("submitted_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "student_id").Unique(),
		index.Fields("student_id"),
		index.Fields("updated_at"),
	}
}
