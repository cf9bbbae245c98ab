// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/unit"
	"github.com/google/uuid"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLessonType sets the "lesson_type" field.
func (_c *LessonCreate) SetLessonType(v lesson.LessonType) *LessonCreate {
	_c.mutation.SetLessonType(v)
	return _c
}

// SetNillableLessonType sets the "lesson_type" field if the given value is not nil.
func (_c *LessonCreate) SetNillableLessonType(v *lesson.LessonType) *LessonCreate {
	if v != nil {
		_c.SetLessonType(*v)
	}
	return _c
}

// SetIsAiGuided sets the "is_ai_guided" field.
func (_c *LessonCreate) SetIsAiGuided(v bool) *LessonCreate {
	_c.mutation.SetIsAiGuided(v)
	return _c
}

// SetNillableIsAiGuided sets the "is_ai_guided" field if the given value is not nil.
func (_c *LessonCreate) SetNillableIsAiGuided(v *bool) *LessonCreate {
	if v != nil {
		_c.SetIsAiGuided(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *LessonCreate) SetSteps(v []string) *LessonCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetStarterCode sets the "starter_code" field.
func (_c *LessonCreate) SetStarterCode(v string) *LessonCreate {
	_c.mutation.SetStarterCode(v)
	return _c
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_c *LessonCreate) SetNillableStarterCode(v *string) *LessonCreate {
	if v != nil {
		_c.SetStarterCode(*v)
	}
	return _c
}

// SetReferenceProject sets the "reference_project" field.
func (_c *LessonCreate) SetReferenceProject(v string) *LessonCreate {
	_c.mutation.SetReferenceProject(v)
	return _c
}

// SetNillableReferenceProject sets the "reference_project" field if the given value is not nil.
func (_c *LessonCreate) SetNillableReferenceProject(v *string) *LessonCreate {
	if v != nil {
		_c.SetReferenceProject(*v)
	}
	return _c
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_c *LessonCreate) SetReflectionQuestion(v string) *LessonCreate {
	_c.mutation.SetReflectionQuestion(v)
	return _c
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_c *LessonCreate) SetNillableReflectionQuestion(v *string) *LessonCreate {
	if v != nil {
		_c.SetReflectionQuestion(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *LessonCreate) SetPosition(v int) *LessonCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePosition(v *int) *LessonCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableID(v *uuid.UUID) *LessonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUnitID sets the "unit" edge to the Unit entity by ID.
func (_c *LessonCreate) SetUnitID(id int) *LessonCreate {
	_c.mutation.SetUnitID(id)
	return _c
}

// SetNillableUnitID sets the "unit" edge to the Unit entity by ID if the given value is not nil.
func (_c *LessonCreate) SetNillableUnitID(id *int) *LessonCreate {
	if id != nil {
		_c = _c.SetUnitID(*id)
	}
	return _c
}

// SetUnit sets the "unit" edge to the Unit entity.
func (_c *LessonCreate) SetUnit(v *Unit) *LessonCreate {
	return _c.SetUnitID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.LessonType(); !ok {
		v := lesson.DefaultLessonType
		_c.mutation.SetLessonType(v)
	}
	if _, ok := _c.mutation.IsAiGuided(); !ok {
		v := lesson.DefaultIsAiGuided
		_c.mutation.SetIsAiGuided(v)
	}
	if _, ok := _c.mutation.StarterCode(); !ok {
		v := lesson.DefaultStarterCode
		_c.mutation.SetStarterCode(v)
	}
	if _, ok := _c.mutation.ReferenceProject(); !ok {
		v := lesson.DefaultReferenceProject
		_c.mutation.SetReferenceProject(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := lesson.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lesson.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonType(); !ok {
		return &ValidationError{Name: "lesson_type", err: errors.New(`ent: missing required field "Lesson.lesson_type"`)}
	}
	if v, ok := _c.mutation.LessonType(); ok {
		if err := lesson.LessonTypeValidator(v); err != nil {
			return &ValidationError{Name: "lesson_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAiGuided(); !ok {
		return &ValidationError{Name: "is_ai_guided", err: errors.New(`ent: missing required field "Lesson.is_ai_guided"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "Lesson.steps"`)}
	}
	if _, ok := _c.mutation.StarterCode(); !ok {
		return &ValidationError{Name: "starter_code", err: errors.New(`ent: missing required field "Lesson.starter_code"`)}
	}
	if _, ok := _c.mutation.ReferenceProject(); !ok {
		return &ValidationError{Name: "reference_project", err: errors.New(`ent: missing required field "Lesson.reference_project"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Lesson.position"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeEnum, value)
		_node.LessonType = value
	}
	if value, ok := _c.mutation.IsAiGuided(); ok {
		_spec.SetField(lesson.FieldIsAiGuided, field.TypeBool, value)
		_node.IsAiGuided = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(lesson.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.StarterCode(); ok {
		_spec.SetField(lesson.FieldStarterCode, field.TypeString, value)
		_node.StarterCode = value
	}
	if value, ok := _c.mutation.ReferenceProject(); ok {
		_spec.SetField(lesson.FieldReferenceProject, field.TypeString, value)
		_node.ReferenceProject = value
	}
	if value, ok := _c.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lesson.FieldReflectionQuestion, field.TypeString, value)
		_node.ReflectionQuestion = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.UnitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.UnitTable,
			Columns: []string{lesson.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.unit_lessons = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
