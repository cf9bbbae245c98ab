// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/predicate"
	"github.com/codelane/coderoom/ent/unit"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLessonType sets the "lesson_type" field.
func (_u *LessonUpdate) SetLessonType(v lesson.LessonType) *LessonUpdate {
	_u.mutation.SetLessonType(v)
	return _u
}

// SetNillableLessonType sets the "lesson_type" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLessonType(v *lesson.LessonType) *LessonUpdate {
	if v != nil {
		_u.SetLessonType(*v)
	}
	return _u
}

// SetIsAiGuided sets the "is_ai_guided" field.
func (_u *LessonUpdate) SetIsAiGuided(v bool) *LessonUpdate {
	_u.mutation.SetIsAiGuided(v)
	return _u
}

// SetNillableIsAiGuided sets the "is_ai_guided" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIsAiGuided(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetIsAiGuided(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonUpdate) SetSteps(v []string) *LessonUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonUpdate) AppendSteps(v []string) *LessonUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetStarterCode sets the "starter_code" field.
func (_u *LessonUpdate) SetStarterCode(v string) *LessonUpdate {
	_u.mutation.SetStarterCode(v)
	return _u
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableStarterCode(v *string) *LessonUpdate {
	if v != nil {
		_u.SetStarterCode(*v)
	}
	return _u
}

// SetReferenceProject sets the "reference_project" field.
func (_u *LessonUpdate) SetReferenceProject(v string) *LessonUpdate {
	_u.mutation.SetReferenceProject(v)
	return _u
}

// SetNillableReferenceProject sets the "reference_project" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableReferenceProject(v *string) *LessonUpdate {
	if v != nil {
		_u.SetReferenceProject(*v)
	}
	return _u
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_u *LessonUpdate) SetReflectionQuestion(v string) *LessonUpdate {
	_u.mutation.SetReflectionQuestion(v)
	return _u
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableReflectionQuestion(v *string) *LessonUpdate {
	if v != nil {
		_u.SetReflectionQuestion(*v)
	}
	return _u
}

// ClearReflectionQuestion clears the value of the "reflection_question" field.
func (_u *LessonUpdate) ClearReflectionQuestion() *LessonUpdate {
	_u.mutation.ClearReflectionQuestion()
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdate) SetPosition(v int) *LessonUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePosition(v *int) *LessonUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdate) AddPosition(v int) *LessonUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUnitID sets the "unit" edge to the Unit entity by ID.
func (_u *LessonUpdate) SetUnitID(id int) *LessonUpdate {
	_u.mutation.SetUnitID(id)
	return _u
}

// SetNillableUnitID sets the "unit" edge to the Unit entity by ID if the given value is not nil.
func (_u *LessonUpdate) SetNillableUnitID(id *int) *LessonUpdate {
	if id != nil {
		_u = _u.SetUnitID(*id)
	}
	return _u
}

// SetUnit sets the "unit" edge to the Unit entity.
func (_u *LessonUpdate) SetUnit(v *Unit) *LessonUpdate {
	return _u.SetUnitID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearUnit clears the "unit" edge to the Unit entity.
func (_u *LessonUpdate) ClearUnit() *LessonUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonType(); ok {
		if err := lesson.LessonTypeValidator(v); err != nil {
			return &ValidationError{Name: "lesson_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAiGuided(); ok {
		_spec.SetField(lesson.FieldIsAiGuided, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lesson.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.StarterCode(); ok {
		_spec.SetField(lesson.FieldStarterCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceProject(); ok {
		_spec.SetField(lesson.FieldReferenceProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lesson.FieldReflectionQuestion, field.TypeString, value)
	}
	if _u.mutation.ReflectionQuestionCleared() {
		_spec.ClearField(lesson.FieldReflectionQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.UnitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLessonType sets the "lesson_type" field.
func (_u *LessonUpdateOne) SetLessonType(v lesson.LessonType) *LessonUpdateOne {
	_u.mutation.SetLessonType(v)
	return _u
}

// SetNillableLessonType sets the "lesson_type" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLessonType(v *lesson.LessonType) *LessonUpdateOne {
	if v != nil {
		_u.SetLessonType(*v)
	}
	return _u
}

// SetIsAiGuided sets the "is_ai_guided" field.
func (_u *LessonUpdateOne) SetIsAiGuided(v bool) *LessonUpdateOne {
	_u.mutation.SetIsAiGuided(v)
	return _u
}

// SetNillableIsAiGuided sets the "is_ai_guided" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIsAiGuided(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetIsAiGuided(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonUpdateOne) SetSteps(v []string) *LessonUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonUpdateOne) AppendSteps(v []string) *LessonUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetStarterCode sets the "starter_code" field.
func (_u *LessonUpdateOne) SetStarterCode(v string) *LessonUpdateOne {
	_u.mutation.SetStarterCode(v)
	return _u
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableStarterCode(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetStarterCode(*v)
	}
	return _u
}

// SetReferenceProject sets the "reference_project" field.
func (_u *LessonUpdateOne) SetReferenceProject(v string) *LessonUpdateOne {
	_u.mutation.SetReferenceProject(v)
	return _u
}

// SetNillableReferenceProject sets the "reference_project" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableReferenceProject(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetReferenceProject(*v)
	}
	return _u
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_u *LessonUpdateOne) SetReflectionQuestion(v string) *LessonUpdateOne {
	_u.mutation.SetReflectionQuestion(v)
	return _u
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableReflectionQuestion(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetReflectionQuestion(*v)
	}
	return _u
}

// ClearReflectionQuestion clears the value of the "reflection_question" field.
func (_u *LessonUpdateOne) ClearReflectionQuestion() *LessonUpdateOne {
	_u.mutation.ClearReflectionQuestion()
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdateOne) SetPosition(v int) *LessonUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePosition(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdateOne) AddPosition(v int) *LessonUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUnitID sets the "unit" edge to the Unit entity by ID.
func (_u *LessonUpdateOne) SetUnitID(id int) *LessonUpdateOne {
	_u.mutation.SetUnitID(id)
	return _u
}

// SetNillableUnitID sets the "unit" edge to the Unit entity by ID if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableUnitID(id *int) *LessonUpdateOne {
	if id != nil {
		_u = _u.SetUnitID(*id)
	}
	return _u
}

// SetUnit sets the "unit" edge to the Unit entity.
func (_u *LessonUpdateOne) SetUnit(v *Unit) *LessonUpdateOne {
	return _u.SetUnitID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearUnit clears the "unit" edge to the Unit entity.
func (_u *LessonUpdateOne) ClearUnit() *LessonUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonType(); ok {
		if err := lesson.LessonTypeValidator(v); err != nil {
			return &ValidationError{Name: "lesson_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAiGuided(); ok {
		_spec.SetField(lesson.FieldIsAiGuided, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lesson.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.StarterCode(); ok {
		_spec.SetField(lesson.FieldStarterCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceProject(); ok {
		_spec.SetField(lesson.FieldReferenceProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lesson.FieldReflectionQuestion, field.TypeString, value)
	}
	if _u.mutation.ReflectionQuestionCleared() {
		_spec.ClearField(lesson.FieldReflectionQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.UnitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
