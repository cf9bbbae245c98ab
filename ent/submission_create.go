// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/submission"
	"github.com/google/uuid"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *SubmissionCreate) SetLessonID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *SubmissionCreate) SetStudentID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *submission.Status) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *SubmissionCreate) SetCurrentStep(v int) *SubmissionCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCurrentStep(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetCode sets the "code" field.
func (_c *SubmissionCreate) SetCode(v string) *SubmissionCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCode(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// SetTextAnswer sets the "text_answer" field.
func (_c *SubmissionCreate) SetTextAnswer(v string) *SubmissionCreate {
	_c.mutation.SetTextAnswer(v)
	return _c
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableTextAnswer(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetTextAnswer(*v)
	}
	return _c
}

// SetReflectionAnswer sets the "reflection_answer" field.
func (_c *SubmissionCreate) SetReflectionAnswer(v string) *SubmissionCreate {
	_c.mutation.SetReflectionAnswer(v)
	return _c
}

// SetNillableReflectionAnswer sets the "reflection_answer" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableReflectionAnswer(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetReflectionAnswer(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *SubmissionCreate) SetHistory(v []map[string]interface{}) *SubmissionCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SubmissionCreate) SetGrade(v float64) *SubmissionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGrade(v *float64) *SubmissionCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetFeedbackComment sets the "feedback_comment" field.
func (_c *SubmissionCreate) SetFeedbackComment(v string) *SubmissionCreate {
	_c.mutation.SetFeedbackComment(v)
	return _c
}

// SetNillableFeedbackComment sets the "feedback_comment" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableFeedbackComment(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetFeedbackComment(*v)
	}
	return _c
}

// SetGradedAt sets the "graded_at" field.
func (_c *SubmissionCreate) SetGradedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetGradedAt(v)
	return _c
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGradedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetGradedAt(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SubmissionCreate) SetSubmittedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmittedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := submission.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.Code(); !ok {
		v := submission.DefaultCode
		_c.mutation.SetCode(v)
	}
	if _, ok := _c.mutation.TextAnswer(); !ok {
		v := submission.DefaultTextAnswer
		_c.mutation.SetTextAnswer(v)
	}
	if _, ok := _c.mutation.ReflectionAnswer(); !ok {
		v := submission.DefaultReflectionAnswer
		_c.mutation.SetReflectionAnswer(v)
	}
	if _, ok := _c.mutation.FeedbackComment(); !ok {
		v := submission.DefaultFeedbackComment
		_c.mutation.SetFeedbackComment(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Submission.lesson_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Submission.student_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Submission.current_step"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Submission.code"`)}
	}
	if _, ok := _c.mutation.TextAnswer(); !ok {
		return &ValidationError{Name: "text_answer", err: errors.New(`ent: missing required field "Submission.text_answer"`)}
	}
	if _, ok := _c.mutation.ReflectionAnswer(); !ok {
		return &ValidationError{Name: "reflection_answer", err: errors.New(`ent: missing required field "Submission.reflection_answer"`)}
	}
	if _, ok := _c.mutation.FeedbackComment(); !ok {
		return &ValidationError{Name: "feedback_comment", err: errors.New(`ent: missing required field "Submission.feedback_comment"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(submission.FieldLessonID, field.TypeUUID, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(submission.FieldStudentID, field.TypeUUID, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(submission.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(submission.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.TextAnswer(); ok {
		_spec.SetField(submission.FieldTextAnswer, field.TypeString, value)
		_node.TextAnswer = value
	}
	if value, ok := _c.mutation.ReflectionAnswer(); ok {
		_spec.SetField(submission.FieldReflectionAnswer, field.TypeString, value)
		_node.ReflectionAnswer = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(submission.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeFloat64, value)
		_node.Grade = &value
	}
	if value, ok := _c.mutation.FeedbackComment(); ok {
		_spec.SetField(submission.FieldFeedbackComment, field.TypeString, value)
		_node.FeedbackComment = value
	}
	if value, ok := _c.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
		_node.GradedAt = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
