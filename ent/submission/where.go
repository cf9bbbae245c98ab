// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codelane/coderoom/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLessonID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentID, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCurrentStep, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCode, v))
}

// TextAnswer applies equality check predicate on the "text_answer" field. It's identical to TextAnswerEQ.
func TextAnswer(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTextAnswer, v))
}

// ReflectionAnswer applies equality check predicate on the "reflection_answer" field. It's identical to ReflectionAnswerEQ.
func ReflectionAnswer(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReflectionAnswer, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGrade, v))
}

// FeedbackComment applies equality check predicate on the "feedback_comment" field. It's identical to FeedbackCommentEQ.
func FeedbackComment(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFeedbackComment, v))
}

// GradedAt applies equality check predicate on the "graded_at" field. It's identical to GradedAtEQ.
func GradedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGradedAt, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldLessonID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStudentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCurrentStep, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldCode, v))
}

// TextAnswerEQ applies the EQ predicate on the "text_answer" field.
func TextAnswerEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTextAnswer, v))
}

// TextAnswerNEQ applies the NEQ predicate on the "text_answer" field.
func TextAnswerNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTextAnswer, v))
}

// TextAnswerIn applies the In predicate on the "text_answer" field.
func TextAnswerIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTextAnswer, vs...))
}

// TextAnswerNotIn applies the NotIn predicate on the "text_answer" field.
func TextAnswerNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTextAnswer, vs...))
}

// TextAnswerGT applies the GT predicate on the "text_answer" field.
func TextAnswerGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTextAnswer, v))
}

// TextAnswerGTE applies the GTE predicate on the "text_answer" field.
func TextAnswerGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTextAnswer, v))
}

// TextAnswerLT applies the LT predicate on the "text_answer" field.
func TextAnswerLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTextAnswer, v))
}

// TextAnswerLTE applies the LTE predicate on the "text_answer" field.
func TextAnswerLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTextAnswer, v))
}

// TextAnswerContains applies the Contains predicate on the "text_answer" field.
func TextAnswerContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldTextAnswer, v))
}

// TextAnswerHasPrefix applies the HasPrefix predicate on the "text_answer" field.
func TextAnswerHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldTextAnswer, v))
}

// TextAnswerHasSuffix applies the HasSuffix predicate on the "text_answer" field.
func TextAnswerHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldTextAnswer, v))
}

// TextAnswerEqualFold applies the EqualFold predicate on the "text_answer" field.
func TextAnswerEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldTextAnswer, v))
}

// TextAnswerContainsFold applies the ContainsFold predicate on the "text_answer" field.
func TextAnswerContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldTextAnswer, v))
}

// ReflectionAnswerEQ applies the EQ predicate on the "reflection_answer" field.
func ReflectionAnswerEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldReflectionAnswer, v))
}

// ReflectionAnswerNEQ applies the NEQ predicate on the "reflection_answer" field.
func ReflectionAnswerNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldReflectionAnswer, v))
}

// ReflectionAnswerIn applies the In predicate on the "reflection_answer" field.
func ReflectionAnswerIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldReflectionAnswer, vs...))
}

// ReflectionAnswerNotIn applies the NotIn predicate on the "reflection_answer" field.
func ReflectionAnswerNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldReflectionAnswer, vs...))
}

// ReflectionAnswerGT applies the GT predicate on the "reflection_answer" field.
func ReflectionAnswerGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldReflectionAnswer, v))
}

// ReflectionAnswerGTE applies the GTE predicate on the "reflection_answer" field.
func ReflectionAnswerGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldReflectionAnswer, v))
}

// ReflectionAnswerLT applies the LT predicate on the "reflection_answer" field.
func ReflectionAnswerLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldReflectionAnswer, v))
}

// ReflectionAnswerLTE applies the LTE predicate on the "reflection_answer" field.
func ReflectionAnswerLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldReflectionAnswer, v))
}

// ReflectionAnswerContains applies the Contains predicate on the "reflection_answer" field.
func ReflectionAnswerContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldReflectionAnswer, v))
}

// ReflectionAnswerHasPrefix applies the HasPrefix predicate on the "reflection_answer" field.
func ReflectionAnswerHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldReflectionAnswer, v))
}

// ReflectionAnswerHasSuffix applies the HasSuffix predicate on the "reflection_answer" field.
func ReflectionAnswerHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldReflectionAnswer, v))
}

// ReflectionAnswerEqualFold applies the EqualFold predicate on the "reflection_answer" field.
func ReflectionAnswerEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldReflectionAnswer, v))
}

// ReflectionAnswerContainsFold applies the ContainsFold predicate on the "reflection_answer" field.
func ReflectionAnswerContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldReflectionAnswer, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldHistory))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldGrade, v))
}

// GradeIsNil applies the IsNil predicate on the "grade" field.
func GradeIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldGrade))
}

// GradeNotNil applies the NotNil predicate on the "grade" field.
func GradeNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldGrade))
}

// FeedbackCommentEQ applies the EQ predicate on the "feedback_comment" field.
func FeedbackCommentEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFeedbackComment, v))
}

// FeedbackCommentNEQ applies the NEQ predicate on the "feedback_comment" field.
func FeedbackCommentNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFeedbackComment, v))
}

// FeedbackCommentIn applies the In predicate on the "feedback_comment" field.
func FeedbackCommentIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFeedbackComment, vs...))
}

// FeedbackCommentNotIn applies the NotIn predicate on the "feedback_comment" field.
func FeedbackCommentNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFeedbackComment, vs...))
}

// FeedbackCommentGT applies the GT predicate on the "feedback_comment" field.
func FeedbackCommentGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFeedbackComment, v))
}

// FeedbackCommentGTE applies the GTE predicate on the "feedback_comment" field.
func FeedbackCommentGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFeedbackComment, v))
}

// FeedbackCommentLT applies the LT predicate on the "feedback_comment" field.
func FeedbackCommentLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFeedbackComment, v))
}

// FeedbackCommentLTE applies the LTE predicate on the "feedback_comment" field.
func FeedbackCommentLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFeedbackComment, v))
}

// FeedbackCommentContains applies the Contains predicate on the "feedback_comment" field.
func FeedbackCommentContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFeedbackComment, v))
}

// FeedbackCommentHasPrefix applies the HasPrefix predicate on the "feedback_comment" field.
func FeedbackCommentHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFeedbackComment, v))
}

// FeedbackCommentHasSuffix applies the HasSuffix predicate on the "feedback_comment" field.
func FeedbackCommentHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFeedbackComment, v))
}

// FeedbackCommentEqualFold applies the EqualFold predicate on the "feedback_comment" field.
func FeedbackCommentEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFeedbackComment, v))
}

// FeedbackCommentContainsFold applies the ContainsFold predicate on the "feedback_comment" field.
func FeedbackCommentContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFeedbackComment, v))
}

// GradedAtEQ applies the EQ predicate on the "graded_at" field.
func GradedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGradedAt, v))
}

// GradedAtNEQ applies the NEQ predicate on the "graded_at" field.
func GradedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldGradedAt, v))
}

// GradedAtIn applies the In predicate on the "graded_at" field.
func GradedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldGradedAt, vs...))
}

// GradedAtNotIn applies the NotIn predicate on the "graded_at" field.
func GradedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldGradedAt, vs...))
}

// GradedAtGT applies the GT predicate on the "graded_at" field.
func GradedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldGradedAt, v))
}

// GradedAtGTE applies the GTE predicate on the "graded_at" field.
func GradedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldGradedAt, v))
}

// GradedAtLT applies the LT predicate on the "graded_at" field.
func GradedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldGradedAt, v))
}

// GradedAtLTE applies the LTE predicate on the "graded_at" field.
func GradedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldGradedAt, v))
}

// GradedAtIsNil applies the IsNil predicate on the "graded_at" field.
func GradedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldGradedAt))
}

// GradedAtNotNil applies the NotNil predicate on the "graded_at" field.
func GradedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldGradedAt))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmittedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
