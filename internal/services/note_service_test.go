package services

import (
	"context"
	"errors"
	"testing"

	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type noteFixture struct {
	service  *NoteService
	noteRepo *repository.NoteRepository
	manager  *model.User
	author   *model.User
	other    *model.User
	project  *model.Project
	task     *model.Task
}

func setupNoteFixture(t *testing.T) *noteFixture {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	author := createTestUser(t, db, "Carol", "carol@example.com")
	other := createTestUser(t, db, "Dave", "dave@example.com")

	project, err := projectRepo.Create(ctx, manager.ID, "X", "Y", "Z")
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	for _, u := range []*model.User{author, other} {
		if err := projectRepo.AddTeamMember(ctx, project.ID, u.ID); err != nil {
			t.Fatalf("failed to add team member: %v", err)
		}
	}

	task, err := taskRepo.Create(ctx, project.ID, "T1", "d")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	return &noteFixture{
		service:  NewNoteService(noteRepo),
		noteRepo: noteRepo,
		manager:  manager,
		author:   author,
		other:    other,
		project:  project,
		task:     task,
	}
}

func TestNoteService_CreateAndList(t *testing.T) {
	f := setupNoteFixture(t)
	ctx := context.Background()

	note, err := f.service.Create(ctx, f.author.ID, f.task, "remember the milk")
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	if note.CreatedBy != f.author.ID {
		t.Errorf("note author should be the actor, got %s", note.CreatedBy)
	}
	if note.TaskID != f.task.ID {
		t.Errorf("note bound to wrong task: %s", note.TaskID)
	}

	notes, err := f.service.ListByTask(ctx, f.task)
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("expected one note, got %d", len(notes))
	}
}

func TestNoteService_DeleteByAuthorOrManagerOnly(t *testing.T) {
	f := setupNoteFixture(t)
	ctx := context.Background()

	first, _ := f.service.Create(ctx, f.author.ID, f.task, "first")
	second, _ := f.service.Create(ctx, f.author.ID, f.task, "second")

	// Another team member is neither author nor manager.
	err := f.service.Delete(ctx, f.other.ID, f.project, f.task, first.ID)
	if !errors.Is(err, apperrors.ErrNoteDeleteDenied) {
		t.Errorf("expected deletion by a bystander to be denied, got %v", err)
	}

	if err := f.service.Delete(ctx, f.manager.ID, f.project, f.task, first.ID); err != nil {
		t.Errorf("manager should delete any note: %v", err)
	}

	if err := f.service.Delete(ctx, f.author.ID, f.project, f.task, second.ID); err != nil {
		t.Errorf("author should delete own note: %v", err)
	}

	notes, _ := f.noteRepo.ListByTask(ctx, f.task.ID)
	if len(notes) != 0 {
		t.Errorf("expected no notes left, got %d", len(notes))
	}
}

func TestNoteService_DeleteChecksTaskBinding(t *testing.T) {
	f := setupNoteFixture(t)
	ctx := context.Background()

	note, _ := f.service.Create(ctx, f.author.ID, f.task, "hello")

	otherTask := &model.Task{ID: "some-other-task", ProjectID: f.project.ID}
	err := f.service.Delete(ctx, f.manager.ID, f.project, otherTask, note.ID)
	if !errors.Is(err, apperrors.ErrNoteNotFound) {
		t.Errorf("a note reached through the wrong task should read as not found, got %v", err)
	}

	if err := f.service.Delete(ctx, f.manager.ID, f.project, f.task, "no-such-note"); !errors.Is(err, apperrors.ErrNoteNotFound) {
		t.Errorf("expected not-found for a missing note, got %v", err)
	}
}
