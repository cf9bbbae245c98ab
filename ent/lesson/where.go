// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codelane/coderoom/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// IsAiGuided applies equality check predicate on the "is_ai_guided" field. It's identical to IsAiGuidedEQ.
func IsAiGuided(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldIsAiGuided, v))
}

// StarterCode applies equality check predicate on the "starter_code" field. It's identical to StarterCodeEQ.
func StarterCode(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStarterCode, v))
}

// ReferenceProject applies equality check predicate on the "reference_project" field. It's identical to ReferenceProjectEQ.
func ReferenceProject(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReferenceProject, v))
}

// ReflectionQuestion applies equality check predicate on the "reflection_question" field. It's identical to ReflectionQuestionEQ.
func ReflectionQuestion(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReflectionQuestion, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPosition, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTitle, v))
}

// LessonTypeEQ applies the EQ predicate on the "lesson_type" field.
func LessonTypeEQ(v LessonType) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLessonType, v))
}

// LessonTypeNEQ applies the NEQ predicate on the "lesson_type" field.
func LessonTypeNEQ(v LessonType) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLessonType, v))
}

// LessonTypeIn applies the In predicate on the "lesson_type" field.
func LessonTypeIn(vs ...LessonType) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLessonType, vs...))
}

// LessonTypeNotIn applies the NotIn predicate on the "lesson_type" field.
func LessonTypeNotIn(vs ...LessonType) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLessonType, vs...))
}

// IsAiGuidedEQ applies the EQ predicate on the "is_ai_guided" field.
func IsAiGuidedEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldIsAiGuided, v))
}

// IsAiGuidedNEQ applies the NEQ predicate on the "is_ai_guided" field.
func IsAiGuidedNEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldIsAiGuided, v))
}

// StarterCodeEQ applies the EQ predicate on the "starter_code" field.
func StarterCodeEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStarterCode, v))
}

// StarterCodeNEQ applies the NEQ predicate on the "starter_code" field.
func StarterCodeNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldStarterCode, v))
}

// StarterCodeIn applies the In predicate on the "starter_code" field.
func StarterCodeIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldStarterCode, vs...))
}

// StarterCodeNotIn applies the NotIn predicate on the "starter_code" field.
func StarterCodeNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldStarterCode, vs...))
}

// StarterCodeGT applies the GT predicate on the "starter_code" field.
func StarterCodeGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldStarterCode, v))
}

// StarterCodeGTE applies the GTE predicate on the "starter_code" field.
func StarterCodeGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldStarterCode, v))
}

// StarterCodeLT applies the LT predicate on the "starter_code" field.
func StarterCodeLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldStarterCode, v))
}

// StarterCodeLTE applies the LTE predicate on the "starter_code" field.
func StarterCodeLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldStarterCode, v))
}

// StarterCodeContains applies the Contains predicate on the "starter_code" field.
func StarterCodeContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldStarterCode, v))
}

// StarterCodeHasPrefix applies the HasPrefix predicate on the "starter_code" field.
func StarterCodeHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldStarterCode, v))
}

// StarterCodeHasSuffix applies the HasSuffix predicate on the "starter_code" field.
func StarterCodeHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldStarterCode, v))
}

// StarterCodeEqualFold applies the EqualFold predicate on the "starter_code" field.
func StarterCodeEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldStarterCode, v))
}

// StarterCodeContainsFold applies the ContainsFold predicate on the "starter_code" field.
func StarterCodeContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldStarterCode, v))
}

// ReferenceProjectEQ applies the EQ predicate on the "reference_project" field.
func ReferenceProjectEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReferenceProject, v))
}

// ReferenceProjectNEQ applies the NEQ predicate on the "reference_project" field.
func ReferenceProjectNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldReferenceProject, v))
}

// ReferenceProjectIn applies the In predicate on the "reference_project" field.
func ReferenceProjectIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldReferenceProject, vs...))
}

// ReferenceProjectNotIn applies the NotIn predicate on the "reference_project" field.
func ReferenceProjectNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldReferenceProject, vs...))
}

// ReferenceProjectGT applies the GT predicate on the "reference_project" field.
func ReferenceProjectGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldReferenceProject, v))
}

// ReferenceProjectGTE applies the GTE predicate on the "reference_project" field.
func ReferenceProjectGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldReferenceProject, v))
}

// ReferenceProjectLT applies the LT predicate on the "reference_project" field.
func ReferenceProjectLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldReferenceProject, v))
}

// ReferenceProjectLTE applies the LTE predicate on the "reference_project" field.
func ReferenceProjectLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldReferenceProject, v))
}

// ReferenceProjectContains applies the Contains predicate on the "reference_project" field.
func ReferenceProjectContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldReferenceProject, v))
}

// ReferenceProjectHasPrefix applies the HasPrefix predicate on the "reference_project" field.
func ReferenceProjectHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldReferenceProject, v))
}

// ReferenceProjectHasSuffix applies the HasSuffix predicate on the "reference_project" field.
func ReferenceProjectHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldReferenceProject, v))
}

// ReferenceProjectEqualFold applies the EqualFold predicate on the "reference_project" field.
func ReferenceProjectEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldReferenceProject, v))
}

// ReferenceProjectContainsFold applies the ContainsFold predicate on the "reference_project" field.
func ReferenceProjectContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldReferenceProject, v))
}

// ReflectionQuestionEQ applies the EQ predicate on the "reflection_question" field.
func ReflectionQuestionEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReflectionQuestion, v))
}

// ReflectionQuestionNEQ applies the NEQ predicate on the "reflection_question" field.
func ReflectionQuestionNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldReflectionQuestion, v))
}

// ReflectionQuestionIn applies the In predicate on the "reflection_question" field.
func ReflectionQuestionIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldReflectionQuestion, vs...))
}

// ReflectionQuestionNotIn applies the NotIn predicate on the "reflection_question" field.
func ReflectionQuestionNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldReflectionQuestion, vs...))
}

// ReflectionQuestionGT applies the GT predicate on the "reflection_question" field.
func ReflectionQuestionGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldReflectionQuestion, v))
}

// ReflectionQuestionGTE applies the GTE predicate on the "reflection_question" field.
func ReflectionQuestionGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldReflectionQuestion, v))
}

// ReflectionQuestionLT applies the LT predicate on the "reflection_question" field.
func ReflectionQuestionLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldReflectionQuestion, v))
}

// ReflectionQuestionLTE applies the LTE predicate on the "reflection_question" field.
func ReflectionQuestionLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldReflectionQuestion, v))
}

// ReflectionQuestionContains applies the Contains predicate on the "reflection_question" field.
func ReflectionQuestionContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldReflectionQuestion, v))
}

// ReflectionQuestionHasPrefix applies the HasPrefix predicate on the "reflection_question" field.
func ReflectionQuestionHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldReflectionQuestion, v))
}

// ReflectionQuestionHasSuffix applies the HasSuffix predicate on the "reflection_question" field.
func ReflectionQuestionHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldReflectionQuestion, v))
}

// ReflectionQuestionIsNil applies the IsNil predicate on the "reflection_question" field.
func ReflectionQuestionIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldReflectionQuestion))
}

// ReflectionQuestionNotNil applies the NotNil predicate on the "reflection_question" field.
func ReflectionQuestionNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldReflectionQuestion))
}

// ReflectionQuestionEqualFold applies the EqualFold predicate on the "reflection_question" field.
func ReflectionQuestionEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldReflectionQuestion, v))
}

// ReflectionQuestionContainsFold applies the ContainsFold predicate on the "reflection_question" field.
func ReflectionQuestionContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldReflectionQuestion, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPosition, v))
}

// HasUnit applies the HasEdge predicate on the "unit" edge.
func HasUnit() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UnitTable, UnitColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnitWith applies the HasEdge predicate on the "unit" edge with a given conditions (other predicates).
func HasUnitWith(preds ...predicate.Unit) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newUnitStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
