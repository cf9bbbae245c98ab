// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codelane/coderoom/ent/predicate"
	"github.com/codelane/coderoom/ent/submission"
	"github.com/google/uuid"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SubmissionUpdate) SetLessonID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableLessonID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdate) SetStudentID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SubmissionUpdate) SetCurrentStep(v int) *SubmissionUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCurrentStep(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SubmissionUpdate) AddCurrentStep(v int) *SubmissionUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *SubmissionUpdate) SetCode(v string) *SubmissionUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCode(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTextAnswer sets the "text_answer" field.
func (_u *SubmissionUpdate) SetTextAnswer(v string) *SubmissionUpdate {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTextAnswer(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// SetReflectionAnswer sets the "reflection_answer" field.
func (_u *SubmissionUpdate) SetReflectionAnswer(v string) *SubmissionUpdate {
	_u.mutation.SetReflectionAnswer(v)
	return _u
}

// SetNillableReflectionAnswer sets the "reflection_answer" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableReflectionAnswer(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetReflectionAnswer(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *SubmissionUpdate) SetHistory(v []map[string]interface{}) *SubmissionUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *SubmissionUpdate) AppendHistory(v []map[string]interface{}) *SubmissionUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *SubmissionUpdate) ClearHistory() *SubmissionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdate) SetGrade(v float64) *SubmissionUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGrade(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdate) AddGrade(v float64) *SubmissionUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SubmissionUpdate) ClearGrade() *SubmissionUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetFeedbackComment sets the "feedback_comment" field.
func (_u *SubmissionUpdate) SetFeedbackComment(v string) *SubmissionUpdate {
	_u.mutation.SetFeedbackComment(v)
	return _u
}

// SetNillableFeedbackComment sets the "feedback_comment" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFeedbackComment(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetFeedbackComment(*v)
	}
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdate) SetGradedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGradedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdate) ClearGradedAt() *SubmissionUpdate {
	_u.mutation.ClearGradedAt()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdate) SetSubmittedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SubmissionUpdate) ClearSubmittedAt() *SubmissionUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(submission.FieldLessonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(submission.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(submission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(submission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(submission.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(submission.FieldTextAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionAnswer(); ok {
		_spec.SetField(submission.FieldReflectionAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(submission.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(submission.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeFloat64, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(submission.FieldGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackComment(); ok {
		_spec.SetField(submission.FieldFeedbackComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(submission.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *SubmissionUpdateOne) SetLessonID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableLessonID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdateOne) SetStudentID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SubmissionUpdateOne) SetCurrentStep(v int) *SubmissionUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCurrentStep(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SubmissionUpdateOne) AddCurrentStep(v int) *SubmissionUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *SubmissionUpdateOne) SetCode(v string) *SubmissionUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCode(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTextAnswer sets the "text_answer" field.
func (_u *SubmissionUpdateOne) SetTextAnswer(v string) *SubmissionUpdateOne {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTextAnswer(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// SetReflectionAnswer sets the "reflection_answer" field.
func (_u *SubmissionUpdateOne) SetReflectionAnswer(v string) *SubmissionUpdateOne {
	_u.mutation.SetReflectionAnswer(v)
	return _u
}

// SetNillableReflectionAnswer sets the "reflection_answer" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableReflectionAnswer(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetReflectionAnswer(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *SubmissionUpdateOne) SetHistory(v []map[string]interface{}) *SubmissionUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *SubmissionUpdateOne) AppendHistory(v []map[string]interface{}) *SubmissionUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *SubmissionUpdateOne) ClearHistory() *SubmissionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdateOne) SetGrade(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGrade(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdateOne) AddGrade(v float64) *SubmissionUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SubmissionUpdateOne) ClearGrade() *SubmissionUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetFeedbackComment sets the "feedback_comment" field.
func (_u *SubmissionUpdateOne) SetFeedbackComment(v string) *SubmissionUpdateOne {
	_u.mutation.SetFeedbackComment(v)
	return _u
}

// SetNillableFeedbackComment sets the "feedback_comment" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFeedbackComment(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFeedbackComment(*v)
	}
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdateOne) SetGradedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGradedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdateOne) ClearGradedAt() *SubmissionUpdateOne {
	_u.mutation.ClearGradedAt()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdateOne) SetSubmittedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SubmissionUpdateOne) ClearSubmittedAt() *SubmissionUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(submission.FieldLessonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(submission.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(submission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(submission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(submission.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(submission.FieldTextAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionAnswer(); ok {
		_spec.SetField(submission.FieldReflectionAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(submission.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(submission.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeFloat64, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(submission.FieldGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackComment(); ok {
		_spec.SetField(submission.FieldFeedbackComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(submission.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
