// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/predicate"
	"github.com/codelane/coderoom/ent/unit"
	"github.com/google/uuid"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UnitUpdate) SetName(v string) *UnitUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableName(v *string) *UnitUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *UnitUpdate) SetPosition(v int) *UnitUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *UnitUpdate) SetNillablePosition(v *int) *UnitUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *UnitUpdate) AddPosition(v int) *UnitUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *UnitUpdate) SetIsLocked(v bool) *UnitUpdate {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableIsLocked(v *bool) *UnitUpdate {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetIsSequential sets the "is_sequential" field.
func (_u *UnitUpdate) SetIsSequential(v bool) *UnitUpdate {
	_u.mutation.SetIsSequential(v)
	return _u
}

// SetNillableIsSequential sets the "is_sequential" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableIsSequential(v *bool) *UnitUpdate {
	if v != nil {
		_u.SetIsSequential(*v)
	}
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *UnitUpdate) SetAvailableAt(v time.Time) *UnitUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableAvailableAt(v *time.Time) *UnitUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *UnitUpdate) ClearAvailableAt() *UnitUpdate {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetEditor sets the "editor" field.
func (_u *UnitUpdate) SetEditor(v unit.Editor) *UnitUpdate {
	_u.mutation.SetEditor(v)
	return _u
}

// SetNillableEditor sets the "editor" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableEditor(v *unit.Editor) *UnitUpdate {
	if v != nil {
		_u.SetEditor(*v)
	}
	return _u
}

// SetSharesProject sets the "shares_project" field.
func (_u *UnitUpdate) SetSharesProject(v bool) *UnitUpdate {
	_u.mutation.SetSharesProject(v)
	return _u
}

// SetNillableSharesProject sets the "shares_project" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableSharesProject(v *bool) *UnitUpdate {
	if v != nil {
		_u.SetSharesProject(*v)
	}
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *UnitUpdate) AddLessonIDs(ids ...uuid.UUID) *UnitUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *UnitUpdate) AddLessons(v ...*Lesson) *UnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdate) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *UnitUpdate) ClearLessons() *UnitUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *UnitUpdate) RemoveLessonIDs(ids ...uuid.UUID) *UnitUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *UnitUpdate) RemoveLessons(v ...*Lesson) *UnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Editor(); ok {
		if err := unit.EditorValidator(v); err != nil {
			return &ValidationError{Name: "editor", err: fmt.Errorf(`ent: validator failed for field "Unit.editor": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(unit.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(unit.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(unit.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSequential(); ok {
		_spec.SetField(unit.FieldIsSequential, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(unit.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(unit.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Editor(); ok {
		_spec.SetField(unit.FieldEditor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SharesProject(); ok {
		_spec.SetField(unit.FieldSharesProject, field.TypeBool, value)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetName sets the "name" field.
func (_u *UnitUpdateOne) SetName(v string) *UnitUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableName(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *UnitUpdateOne) SetPosition(v int) *UnitUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillablePosition(v *int) *UnitUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *UnitUpdateOne) AddPosition(v int) *UnitUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *UnitUpdateOne) SetIsLocked(v bool) *UnitUpdateOne {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableIsLocked(v *bool) *UnitUpdateOne {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetIsSequential sets the "is_sequential" field.
func (_u *UnitUpdateOne) SetIsSequential(v bool) *UnitUpdateOne {
	_u.mutation.SetIsSequential(v)
	return _u
}

// SetNillableIsSequential sets the "is_sequential" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableIsSequential(v *bool) *UnitUpdateOne {
	if v != nil {
		_u.SetIsSequential(*v)
	}
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *UnitUpdateOne) SetAvailableAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableAvailableAt(v *time.Time) *UnitUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *UnitUpdateOne) ClearAvailableAt() *UnitUpdateOne {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetEditor sets the "editor" field.
func (_u *UnitUpdateOne) SetEditor(v unit.Editor) *UnitUpdateOne {
	_u.mutation.SetEditor(v)
	return _u
}

// SetNillableEditor sets the "editor" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableEditor(v *unit.Editor) *UnitUpdateOne {
	if v != nil {
		_u.SetEditor(*v)
	}
	return _u
}

// SetSharesProject sets the "shares_project" field.
func (_u *UnitUpdateOne) SetSharesProject(v bool) *UnitUpdateOne {
	_u.mutation.SetSharesProject(v)
	return _u
}

// SetNillableSharesProject sets the "shares_project" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableSharesProject(v *bool) *UnitUpdateOne {
	if v != nil {
		_u.SetSharesProject(*v)
	}
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *UnitUpdateOne) AddLessonIDs(ids ...uuid.UUID) *UnitUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *UnitUpdateOne) AddLessons(v ...*Lesson) *UnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdateOne) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *UnitUpdateOne) ClearLessons() *UnitUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *UnitUpdateOne) RemoveLessonIDs(ids ...uuid.UUID) *UnitUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *UnitUpdateOne) RemoveLessons(v ...*Lesson) *UnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unit entity.
func (_u *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Editor(); ok {
		if err := unit.EditorValidator(v); err != nil {
			return &ValidationError{Name: "editor", err: fmt.Errorf(`ent: validator failed for field "Unit.editor": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(unit.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(unit.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(unit.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSequential(); ok {
		_spec.SetField(unit.FieldIsSequential, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(unit.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(unit.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Editor(); ok {
		_spec.SetField(unit.FieldEditor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SharesProject(); ok {
		_spec.SetField(unit.FieldSharesProject, field.TypeBool, value)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Unit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
