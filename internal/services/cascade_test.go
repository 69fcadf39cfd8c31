package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

func TestCascade_DeleteProjectRemovesOwnedGraph(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	cascade := NewCascade(projectRepo, taskRepo, noteRepo)

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")

	doomed, _ := projectRepo.Create(ctx, manager.ID, "Doomed", "Y", "Z")
	survivor, _ := projectRepo.Create(ctx, manager.ID, "Survivor", "Y", "Z")

	var doomedTasks []*model.Task
	for _, name := range []string{"T1", "T2"} {
		task, err := taskRepo.Create(ctx, doomed.ID, name, "d")
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		doomedTasks = append(doomedTasks, task)
		if _, err := noteRepo.Create(ctx, task.ID, manager.ID, "note on "+name); err != nil {
			t.Fatalf("failed to create note: %v", err)
		}
		if err := taskRepo.LogStatusChange(ctx, task.ID, manager.ID, task.Status); err != nil {
			t.Fatalf("failed to log status change: %v", err)
		}
	}

	otherTask, _ := taskRepo.Create(ctx, survivor.ID, "keep", "d")
	if _, err := noteRepo.Create(ctx, otherTask.ID, manager.ID, "keep this note"); err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	if err := cascade.DeleteProject(ctx, doomed.ID); err != nil {
		t.Fatalf("cascade delete failed: %v", err)
	}

	if _, err := projectRepo.FindByID(ctx, doomed.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("project should be gone, got %v", err)
	}

	for _, task := range doomedTasks {
		if _, err := taskRepo.FindByID(ctx, task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("task %s should be gone, got %v", task.Name, err)
		}
		notes, _ := noteRepo.ListByTask(ctx, task.ID)
		if len(notes) != 0 {
			t.Errorf("notes of task %s should be gone, found %d", task.Name, len(notes))
		}
	}

	var orphanedChanges int64
	db.Model(&model.TaskStatusChange{}).Count(&orphanedChanges)
	if orphanedChanges != 0 {
		t.Errorf("completion-log entries of deleted tasks should be gone, found %d", orphanedChanges)
	}

	// The unrelated project keeps its graph.
	if _, err := taskRepo.FindByID(ctx, otherTask.ID); err != nil {
		t.Errorf("unrelated task must survive: %v", err)
	}
	notes, _ := noteRepo.ListByTask(ctx, otherTask.ID)
	if len(notes) != 1 {
		t.Errorf("unrelated note must survive, found %d", len(notes))
	}
}

func TestCascade_DeleteTaskRemovesOnlyItsNotes(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	cascade := NewCascade(projectRepo, taskRepo, noteRepo)

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	project, _ := projectRepo.Create(ctx, manager.ID, "X", "Y", "Z")

	doomed, _ := taskRepo.Create(ctx, project.ID, "doomed", "d")
	kept, _ := taskRepo.Create(ctx, project.ID, "kept", "d")
	if _, err := noteRepo.Create(ctx, doomed.ID, manager.ID, "bye"); err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	if _, err := noteRepo.Create(ctx, kept.ID, manager.ID, "stay"); err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	if err := cascade.DeleteTask(ctx, doomed.ID); err != nil {
		t.Fatalf("cascade delete failed: %v", err)
	}

	if _, err := taskRepo.FindByID(ctx, doomed.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted task still present, got %v", err)
	}

	doomedNotes, _ := noteRepo.ListByTask(ctx, doomed.ID)
	if len(doomedNotes) != 0 {
		t.Errorf("deleted task's notes should be gone, found %d", len(doomedNotes))
	}

	keptNotes, _ := noteRepo.ListByTask(ctx, kept.ID)
	if len(keptNotes) != 1 {
		t.Errorf("sibling task's notes must survive, found %d", len(keptNotes))
	}

	remaining, _ := taskRepo.ListByProject(ctx, project.ID)
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("project task list should only hold the surviving task, got %+v", remaining)
	}
}
