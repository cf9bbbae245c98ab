package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codelane/coderoom/ent"
	entlesson "github.com/codelane/coderoom/ent/lesson"
	entunit "github.com/codelane/coderoom/ent/unit"
	"github.com/codelane/coderoom/internal/curriculum"
)

// unitRepo implements UnitRepo backed by ent.
type unitRepo struct {
	client *ent.Client
}

func (r *unitRepo) List(ctx context.Context) ([]curriculum.Unit, error) {
	rows, err := r.client.Unit.Query().
		Order(ent.Asc(entunit.FieldPosition)).
		WithLessons(func(q *ent.LessonQuery) {
			q.Order(ent.Asc(entlesson.FieldPosition))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	units := make([]curriculum.Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, toDomainUnit(row))
	}
	return units, nil
}

func (r *unitRepo) GetLesson(ctx context.Context, id uuid.UUID) (*curriculum.Lesson, error) {
	e, err := r.client.Lesson.Query().
		Where(entlesson.ID(id)).
		WithUnit().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}

	unitID := 0
	if e.Edges.Unit != nil {
		unitID = e.Edges.Unit.ID
	}
	lesson := toDomainLesson(e, unitID)
	return &lesson, nil
}

func (r *unitRepo) GetUnit(ctx context.Context, id int) (*curriculum.Unit, error) {
	e, err := r.client.Unit.Query().
		Where(entunit.ID(id)).
		WithLessons(func(q *ent.LessonQuery) {
			q.Order(ent.Asc(entlesson.FieldPosition))
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}

	unit := toDomainUnit(e)
	return &unit, nil
}

func (r *unitRepo) Import(ctx context.Context, units []curriculum.Unit) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}

	if err := importUnits(ctx, tx, units); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importUnits(ctx context.Context, tx *ent.Tx, units []curriculum.Unit) error {
	for _, u := range units {
		create := tx.Unit.Create().
			SetName(u.Name).
			SetPosition(u.Position).
			SetIsLocked(u.IsLocked).
			SetIsSequential(u.IsSequential).
			SetEditor(entunit.Editor(u.Editor)).
			SetSharesProject(u.SharesProject)
		if u.AvailableAt != nil {
			create.SetAvailableAt(*u.AvailableAt)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("import unit %q: %w", u.Name, err)
		}

		for _, l := range u.Lessons {
			lc := tx.Lesson.Create().
				SetTitle(l.Title).
				SetLessonType(entlesson.LessonType(l.Type)).
				SetIsAiGuided(l.IsAIGuided).
				SetSteps(l.Steps).
				SetStarterCode(l.StarterCode).
				SetReferenceProject(l.ReferenceProject).
				SetReflectionQuestion(l.ReflectionQuestion).
				SetPosition(l.Position).
				SetUnitID(created.ID)
			if l.ID != uuid.Nil {
				lc.SetID(l.ID)
			}
			if _, err := lc.Save(ctx); err != nil {
				return fmt.Errorf("import lesson %q: %w", l.Title, err)
			}
		}
	}
	return nil
}

func (r *unitRepo) SaveLesson(ctx context.Context, lesson curriculum.Lesson) (uuid.UUID, error) {
	create := r.client.Lesson.Create().
		SetTitle(lesson.Title).
		SetLessonType(entlesson.LessonType(lesson.Type)).
		SetIsAiGuided(lesson.IsAIGuided).
		SetSteps(lesson.Steps).
		SetStarterCode(lesson.StarterCode).
		SetReferenceProject(lesson.ReferenceProject).
		SetReflectionQuestion(lesson.ReflectionQuestion).
		SetPosition(lesson.Position)
	if lesson.UnitID != 0 {
		create.SetUnitID(lesson.UnitID)
	}
	if lesson.ID != uuid.Nil {
		create.SetID(lesson.ID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("save lesson: %w", err)
	}
	return created.ID, nil
}

func toDomainUnit(e *ent.Unit) curriculum.Unit {
	unit := curriculum.Unit{
		ID:            e.ID,
		Name:          e.Name,
		Position:      e.Position,
		IsLocked:      e.IsLocked,
		IsSequential:  e.IsSequential,
		AvailableAt:   e.AvailableAt,
		Editor:        curriculum.EditorType(e.Editor),
		SharesProject: e.SharesProject,
	}
	for _, l := range e.Edges.Lessons {
		unit.Lessons = append(unit.Lessons, toDomainLesson(l, e.ID))
	}
	return unit
}

func toDomainLesson(e *ent.Lesson, unitID int) curriculum.Lesson {
	return curriculum.Lesson{
		ID:                 e.ID,
		UnitID:             unitID,
		Title:              e.Title,
		Type:               curriculum.LessonType(e.LessonType),
		IsAIGuided:         e.IsAiGuided,
		Steps:              e.Steps,
		StarterCode:        e.StarterCode,
		ReferenceProject:   e.ReferenceProject,
		ReflectionQuestion: e.ReflectionQuestion,
		Position:           e.Position,
	}
}
