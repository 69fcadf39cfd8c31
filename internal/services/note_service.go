package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type NoteService struct {
	notes *repository.NoteRepository
}

func NewNoteService(notes *repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// Create attaches a note to a task, authored by the actor. Any project
// member may do this.
func (s *NoteService) Create(ctx context.Context, actorID string, task *model.Task, content string) (*model.Note, error) {
	return s.notes.Create(ctx, task.ID, actorID, content)
}

func (s *NoteService) ListByTask(ctx context.Context, task *model.Task) ([]model.Note, error) {
	return s.notes.ListByTask(ctx, task.ID)
}

// Delete allows only the note's author or the project's manager. Other
// members get the same denial as a missing note. A note is only reachable
// through its own task.
func (s *NoteService) Delete(ctx context.Context, actorID string, project *model.Project, task *model.Task, noteID string) error {
	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return err
	}

	if note.TaskID != task.ID {
		return apperrors.ErrNoteNotFound
	}

	if note.CreatedBy != actorID && project.ManagerID != actorID {
		return apperrors.ErrNoteDeleteDenied
	}

	return s.notes.Delete(ctx, note.ID)
}
