package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/ent"
	entlesson "github.com/codelane/coderoom/ent/lesson"
	entsubmission "github.com/codelane/coderoom/ent/submission"
	entunit "github.com/codelane/coderoom/ent/unit"
	"github.com/codelane/coderoom/internal/curriculum"
)

// submissionRepo implements SubmissionRepo backed by ent.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Find(ctx context.Context, lessonID, studentID uuid.UUID) (*Submission, error) {
	e, err := r.client.Submission.Query().
		Where(
			entsubmission.LessonID(lessonID),
			entsubmission.StudentID(studentID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return toDomainSubmission(e)
}

func (r *submissionRepo) MostRecentInUnit(ctx context.Context, unitID int, studentID, excludingLesson uuid.UUID) (*Submission, error) {
	lessonIDs, err := r.client.Lesson.Query().
		Where(entlesson.HasUnitWith(entunit.ID(unitID))).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unit lessons: %w", err)
	}
	if len(lessonIDs) == 0 {
		return nil, nil
	}

	e, err := r.client.Submission.Query().
		Where(
			entsubmission.StudentID(studentID),
			entsubmission.LessonIDIn(lessonIDs...),
			entsubmission.LessonIDNEQ(excludingLesson),
		).
		Order(ent.Desc(entsubmission.FieldUpdatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find recent submission in unit: %w", err)
	}
	return toDomainSubmission(e)
}

func (r *submissionRepo) UpsertDraft(ctx context.Context, lessonID, studentID uuid.UUID, patch DraftPatch) (*Submission, error) {
	existing, err := r.client.Submission.Query().
		Where(
			entsubmission.LessonID(lessonID),
			entsubmission.StudentID(studentID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("find submission: %w", err)
	}

	if existing == nil {
		history, err := rawHistory(appendHistory(nil, patch.HistoryItem))
		if err != nil {
			return nil, err
		}
		created, err := r.client.Submission.Create().
			SetLessonID(lessonID).
			SetStudentID(studentID).
			SetCurrentStep(patch.CurrentStep).
			SetCode(patch.Code).
			SetTextAnswer(patch.TextAnswer).
			SetHistory(history).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create draft: %w", err)
		}
		return toDomainSubmission(created)
	}

	// Submitted and graded work is read-only.
	if curriculum.SubmissionStatus(existing.Status).Terminal() {
		return toDomainSubmission(existing)
	}

	current, err := domainHistory(existing.History)
	if err != nil {
		return nil, err
	}
	history, err := rawHistory(appendHistory(current, patch.HistoryItem))
	if err != nil {
		return nil, err
	}

	updated, err := existing.Update().
		SetCurrentStep(patch.CurrentStep).
		SetCode(patch.Code).
		SetTextAnswer(patch.TextAnswer).
		SetHistory(history).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}
	return toDomainSubmission(updated)
}

func (r *submissionRepo) UpsertSubmitted(ctx context.Context, lessonID, studentID uuid.UUID, patch SubmitPatch) (*Submission, error) {
	existing, err := r.client.Submission.Query().
		Where(
			entsubmission.LessonID(lessonID),
			entsubmission.StudentID(studentID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("find submission: %w", err)
	}

	if existing == nil {
		created, err := r.client.Submission.Create().
			SetLessonID(lessonID).
			SetStudentID(studentID).
			SetStatus(entsubmission.StatusSubmitted).
			SetCurrentStep(patch.CurrentStep).
			SetCode(patch.Code).
			SetTextAnswer(patch.TextAnswer).
			SetReflectionAnswer(patch.ReflectionAnswer).
			SetSubmittedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create submitted: %w", err)
		}
		return toDomainSubmission(created)
	}

	// Submitting twice is a no-op; grading is never undone.
	if curriculum.SubmissionStatus(existing.Status).Terminal() {
		return toDomainSubmission(existing)
	}

	updated, err := existing.Update().
		SetStatus(entsubmission.StatusSubmitted).
		SetCurrentStep(patch.CurrentStep).
		SetCode(patch.Code).
		SetTextAnswer(patch.TextAnswer).
		SetReflectionAnswer(patch.ReflectionAnswer).
		SetSubmittedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark submitted: %w", err)
	}
	return toDomainSubmission(updated)
}

func (r *submissionRepo) StatusesByLesson(ctx context.Context, studentID uuid.UUID) (map[uuid.UUID]curriculum.SubmissionStatus, error) {
	rows, err := r.client.Submission.Query().
		Where(entsubmission.StudentID(studentID)).
		Select(entsubmission.FieldLessonID, entsubmission.FieldStatus).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}

	statuses := make(map[uuid.UUID]curriculum.SubmissionStatus, len(rows))
	for _, row := range rows {
		statuses[row.LessonID] = curriculum.SubmissionStatus(row.Status)
	}
	return statuses, nil
}

func (r *submissionRepo) CountByStatus(ctx context.Context, studentID uuid.UUID) (map[curriculum.SubmissionStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.client.Submission.Query().
		Where(entsubmission.StudentID(studentID)).
		GroupBy(entsubmission.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	counts := make(map[curriculum.SubmissionStatus]int, len(rows))
	for _, row := range rows {
		counts[curriculum.SubmissionStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *submissionRepo) DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	n, err := r.client.Submission.Delete().
		Where(entsubmission.StudentID(studentID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete submissions: %w", err)
	}
	return n, nil
}

// appendHistory applies the overwrite-by-step-index rule: at most one entry
// per step, re-completing a step replaces its record.
func appendHistory(history []StepHistory, item *StepHistory) []StepHistory {
	if item == nil {
		return history
	}
	for i, h := range history {
		if h.StepIndex == item.StepIndex {
			history[i] = *item
			return history
		}
	}
	return append(history, *item)
}

// domainHistory and rawHistory convert between the typed history slice and
// the loosely-typed form ent stores as a JSON column.
func domainHistory(raw []map[string]any) ([]StepHistory, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	var history []StepHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return history, nil
}

func rawHistory(history []StepHistory) ([]map[string]any, error) {
	if len(history) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return raw, nil
}

func toDomainSubmission(e *ent.Submission) (*Submission, error) {
	history, err := domainHistory(e.History)
	if err != nil {
		return nil, err
	}
	return &Submission{
		LessonID:         e.LessonID,
		StudentID:        e.StudentID,
		Status:           curriculum.SubmissionStatus(e.Status),
		CurrentStep:      e.CurrentStep,
		Code:             e.Code,
		TextAnswer:       e.TextAnswer,
		ReflectionAnswer: e.ReflectionAnswer,
		History:          history,
		Grade:            e.Grade,
		FeedbackComment:  e.FeedbackComment,
		GradedAt:         e.GradedAt,
		SubmittedAt:      e.SubmittedAt,
		UpdatedAt:        e.UpdatedAt,
	}, nil
}
