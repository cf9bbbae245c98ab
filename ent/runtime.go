// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codelane/coderoom/ent/lesson"
	"github.com/codelane/coderoom/ent/llmrequestevent"
	"github.com/codelane/coderoom/ent/schema"
	"github.com/codelane/coderoom/ent/submission"
	"github.com/codelane/coderoom/ent/unit"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[1].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescIsAiGuided is the schema descriptor for is_ai_guided field.
	lessonDescIsAiGuided := lessonFields[3].Descriptor()
	// lesson.DefaultIsAiGuided holds the default value on creation for the is_ai_guided field.
	lesson.DefaultIsAiGuided = lessonDescIsAiGuided.Default.(bool)
	// lessonDescStarterCode is the schema descriptor for starter_code field.
	lessonDescStarterCode := lessonFields[5].Descriptor()
	// lesson.DefaultStarterCode holds the default value on creation for the starter_code field.
	lesson.DefaultStarterCode = lessonDescStarterCode.Default.(string)
	// lessonDescReferenceProject is the schema descriptor for reference_project field.
	lessonDescReferenceProject := lessonFields[6].Descriptor()
	// lesson.DefaultReferenceProject holds the default value on creation for the reference_project field.
	lesson.DefaultReferenceProject = lessonDescReferenceProject.Default.(string)
	// lessonDescPosition is the schema descriptor for position field.
	lessonDescPosition := lessonFields[8].Descriptor()
	// lesson.DefaultPosition holds the default value on creation for the position field.
	lesson.DefaultPosition = lessonDescPosition.Default.(int)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCurrentStep is the schema descriptor for current_step field.
	submissionDescCurrentStep := submissionFields[3].Descriptor()
	// submission.DefaultCurrentStep holds the default value on creation for the current_step field.
	submission.DefaultCurrentStep = submissionDescCurrentStep.Default.(int)
	// submissionDescCode is the schema descriptor for code field.
	submissionDescCode := submissionFields[4].Descriptor()
	// submission.DefaultCode holds the default value on creation for the code field.
	submission.DefaultCode = submissionDescCode.Default.(string)
	// submissionDescTextAnswer is the schema descriptor for text_answer field.
	submissionDescTextAnswer := submissionFields[5].Descriptor()
	// submission.DefaultTextAnswer holds the default value on creation for the text_answer field.
	submission.DefaultTextAnswer = submissionDescTextAnswer.Default.(string)
	// submissionDescReflectionAnswer is the schema descriptor for reflection_answer field.
	submissionDescReflectionAnswer := submissionFields[6].Descriptor()
	// submission.DefaultReflectionAnswer holds the default value on creation for the reflection_answer field.
	submission.DefaultReflectionAnswer = submissionDescReflectionAnswer.Default.(string)
	// submissionDescFeedbackComment is the schema descriptor for feedback_comment field.
	submissionDescFeedbackComment := submissionFields[9].Descriptor()
	// submission.DefaultFeedbackComment holds the default value on creation for the feedback_comment field.
	submission.DefaultFeedbackComment = submissionDescFeedbackComment.Default.(string)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[12].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[13].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescName is the schema descriptor for name field.
	unitDescName := unitFields[0].Descriptor()
	// unit.NameValidator is a validator for the "name" field. It is called by the builders before save.
	unit.NameValidator = unitDescName.Validators[0].(func(string) error)
	// unitDescIsLocked is the schema descriptor for is_locked field.
	unitDescIsLocked := unitFields[2].Descriptor()
	// unit.DefaultIsLocked holds the default value on creation for the is_locked field.
	unit.DefaultIsLocked = unitDescIsLocked.Default.(bool)
	// unitDescIsSequential is the schema descriptor for is_sequential field.
	unitDescIsSequential := unitFields[3].Descriptor()
	// unit.DefaultIsSequential holds the default value on creation for the is_sequential field.
	unit.DefaultIsSequential = unitDescIsSequential.Default.(bool)
	// unitDescSharesProject is the schema descriptor for shares_project field.
	unitDescSharesProject := unitFields[6].Descriptor()
	// unit.DefaultSharesProject holds the default value on creation for the shares_project field.
	unit.DefaultSharesProject = unitDescSharesProject.Default.(bool)
}
