package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Unit is a named grouping of lessons with gating rules.
type Unit struct {
	ent.Schema
}

func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.Int("position").
			Comment("Display/sequence order among units"),
		field.Bool("is_locked").
			Default(false).
			Comment("Manual override; true blocks all access"),
		field.Bool("is_sequential").
			Default(false).
			Comment("Lesson N requires lesson N-1 submitted or graded"),
		field.Time("available_at").
			Optional().
			Nillable().
			Comment("Unit behaves as locked before this time"),
		field.Enum("editor").
			Values("blocks", "text").
			Default("text").
			Comment("Editor type for all lessons in this unit"),
		field.Bool("shares_project").
			Default(false).
			Comment("Blocks units only: lessons share one evolving project"),
	}
}

func (Unit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lessons", Lesson.Type),
	}
}

func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
