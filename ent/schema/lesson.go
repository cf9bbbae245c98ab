package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Lesson is one ordered sequence of steps a student completes.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("title").NotEmpty(),
		field.Enum("lesson_type").
			Values("lesson", "assignment").
			Default("lesson").
			Comment("Assignments are independent work, never AI-graded"),
		field.Bool("is_ai_guided").
			Default(true).
			Comment("When false, step advancement skips automated validation"),
		field.JSON("steps", []string{}).
			Comment("Ordered step instructions in the wire grammar: \"[TAG] body\""),
		field.Text("starter_code").
			Default(""),
		field.Text("reference_project").
			Default("").
			Comment("Blocks-editor content seed, preferred over starter_code"),
		field.String("reflection_question").
			Optional().
			Comment("Free-text prompt shown after all steps are complete"),
		field.Int("position").
			Default(0).
			Comment("Order within the unit; significant for sequential gating"),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("unit", Unit.Type).
			Ref("lessons").
			Unique(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
