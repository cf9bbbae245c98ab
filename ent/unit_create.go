// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/unit"
	"github.com/google/uuid"
)

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *UnitCreate) SetName(v string) *UnitCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *UnitCreate) SetPosition(v int) *UnitCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetIsLocked sets the "is_locked" field.
func (_c *UnitCreate) SetIsLocked(v bool) *UnitCreate {
	_c.mutation.SetIsLocked(v)
	return _c
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_c *UnitCreate) SetNillableIsLocked(v *bool) *UnitCreate {
	if v != nil {
		_c.SetIsLocked(*v)
	}
	return _c
}

// SetIsSequential sets the "is_sequential" field.
func (_c *UnitCreate) SetIsSequential(v bool) *UnitCreate {
	_c.mutation.SetIsSequential(v)
	return _c
}

// SetNillableIsSequential sets the "is_sequential" field if the given value is not nil.
func (_c *UnitCreate) SetNillableIsSequential(v *bool) *UnitCreate {
	if v != nil {
		_c.SetIsSequential(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *UnitCreate) SetAvailableAt(v time.Time) *UnitCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableAvailableAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetEditor sets the "editor" field.
func (_c *UnitCreate) SetEditor(v unit.Editor) *UnitCreate {
	_c.mutation.SetEditor(v)
	return _c
}

// SetNillableEditor sets the "editor" field if the given value is not nil.
func (_c *UnitCreate) SetNillableEditor(v *unit.Editor) *UnitCreate {
	if v != nil {
		_c.SetEditor(*v)
	}
	return _c
}

// SetSharesProject sets the "shares_project" field.
func (_c *UnitCreate) SetSharesProject(v bool) *UnitCreate {
	_c.mutation.SetSharesProject(v)
	return _c
}

// SetNillableSharesProject sets the "shares_project" field if the given value is not nil.
func (_c *UnitCreate) SetNillableSharesProject(v *bool) *UnitCreate {
	if v != nil {
		_c.SetSharesProject(*v)
	}
	return _c
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_c *UnitCreate) AddLessonIDs(ids ...uuid.UUID) *UnitCreate {
	_c.mutation.AddLessonIDs(ids...)
	return _c
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_c *UnitCreate) AddLessons(v ...*Lesson) *UnitCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_c *UnitCreate) Mutation() *UnitMutation {
	return _c.mutation
}

// Save creates the Unit in the database.
func (_c *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitCreate) defaults() {
	if _, ok := _c.mutation.IsLocked(); !ok {
		v := unit.DefaultIsLocked
		_c.mutation.SetIsLocked(v)
	}
	if _, ok := _c.mutation.IsSequential(); !ok {
		v := unit.DefaultIsSequential
		_c.mutation.SetIsSequential(v)
	}
	if _, ok := _c.mutation.Editor(); !ok {
		v := unit.DefaultEditor
		_c.mutation.SetEditor(v)
	}
	if _, ok := _c.mutation.SharesProject(); !ok {
		v := unit.DefaultSharesProject
		_c.mutation.SetSharesProject(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Unit.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Unit.position"`)}
	}
	if _, ok := _c.mutation.IsLocked(); !ok {
		return &ValidationError{Name: "is_locked", err: errors.New(`ent: missing required field "Unit.is_locked"`)}
	}
	if _, ok := _c.mutation.IsSequential(); !ok {
		return &ValidationError{Name: "is_sequential", err: errors.New(`ent: missing required field "Unit.is_sequential"`)}
	}
	if _, ok := _c.mutation.Editor(); !ok {
		return &ValidationError{Name: "editor", err: errors.New(`ent: missing required field "Unit.editor"`)}
	}
	if v, ok := _c.mutation.Editor(); ok {
		if err := unit.EditorValidator(v); err != nil {
			return &ValidationError{Name: "editor", err: fmt.Errorf(`ent: validator failed for field "Unit.editor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SharesProject(); !ok {
		return &ValidationError{Name: "shares_project", err: errors.New(`ent: missing required field "Unit.shares_project"`)}
	}
	return nil
}

func (_c *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(unit.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.IsLocked(); ok {
		_spec.SetField(unit.FieldIsLocked, field.TypeBool, value)
		_node.IsLocked = value
	}
	if value, ok := _c.mutation.IsSequential(); ok {
		_spec.SetField(unit.FieldIsSequential, field.TypeBool, value)
		_node.IsSequential = value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(unit.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = &value
	}
	if value, ok := _c.mutation.Editor(); ok {
		_spec.SetField(unit.FieldEditor, field.TypeEnum, value)
		_node.Editor = value
	}
	if value, ok := _c.mutation.SharesProject(); ok {
		_spec.SetField(unit.FieldSharesProject, field.TypeBool, value)
		_node.SharesProject = value
	}
	if nodes := _c.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unit.LessonsTable,
			Columns: []string{unit.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
}

// Save creates the Unit entities in the database.
func (_c *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Unit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
