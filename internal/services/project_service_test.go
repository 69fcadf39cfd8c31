package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	repository "taskhive.com/taskhive/internal/repositories"
)

func TestProjectService_CreateSetsManager(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	service := NewProjectService(projectRepo, NewCascade(projectRepo, taskRepo, noteRepo))

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")

	created, err := service.Create(ctx, manager.ID, dto.ProjectRequest{
		ProjectName: "X",
		ClientName:  "Y",
		Description: "Z",
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	project, err := projectRepo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}

	if project.ManagerID != manager.ID {
		t.Errorf("expected manager %s, got %s", manager.ID, project.ManagerID)
	}
	if len(project.Team) != 0 {
		t.Errorf("expected empty team, got %d members", len(project.Team))
	}
	if len(project.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(project.Tasks))
	}
}

func TestProjectService_ListVisibility(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	service := NewProjectService(projectRepo, NewCascade(projectRepo, taskRepo, noteRepo))

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	member := createTestUser(t, db, "Bob", "bob@example.com")
	stranger := createTestUser(t, db, "Carol", "carol@example.com")

	project, err := service.Create(ctx, manager.ID, dto.ProjectRequest{
		ProjectName: "X", ClientName: "Y", Description: "Z",
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if err := projectRepo.AddTeamMember(ctx, project.ID, member.ID); err != nil {
		t.Fatalf("failed to add team member: %v", err)
	}

	for _, tc := range []struct {
		name   string
		userID string
		want   int
	}{
		{"manager", manager.ID, 1},
		{"team member", member.ID, 1},
		{"stranger", stranger.ID, 0},
	} {
		projects, err := service.List(ctx, tc.userID)
		if err != nil {
			t.Fatalf("%s: list failed: %v", tc.name, err)
		}
		if len(projects) != tc.want {
			t.Errorf("%s: expected %d projects, got %d", tc.name, tc.want, len(projects))
		}
	}
}

func TestProjectService_GetHidesExistenceFromOutsiders(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	service := NewProjectService(projectRepo, NewCascade(projectRepo, taskRepo, noteRepo))

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	stranger := createTestUser(t, db, "Carol", "carol@example.com")

	project, _ := service.Create(ctx, manager.ID, dto.ProjectRequest{
		ProjectName: "X", ClientName: "Y", Description: "Z",
	})

	_, err := service.Get(ctx, stranger.ID, project.ID)
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("expected denial to look like not-found, got %v", err)
	}

	// Denial for an existing-but-hidden project and a genuinely missing one
	// must be indistinguishable at the boundary.
	_, missingErr := service.Get(ctx, stranger.ID, "no-such-project")
	if !errors.Is(missingErr, apperrors.ErrProjectNotFound) {
		t.Errorf("expected not-found for missing project, got %v", missingErr)
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apperrors.StatusCode(err))
	}

	if _, err := service.Get(ctx, manager.ID, project.ID); err != nil {
		t.Errorf("manager should read own project: %v", err)
	}
}

func TestProjectService_UpdateManagerOnly(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	service := NewProjectService(projectRepo, NewCascade(projectRepo, taskRepo, noteRepo))

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	member := createTestUser(t, db, "Bob", "bob@example.com")

	project, _ := service.Create(ctx, manager.ID, dto.ProjectRequest{
		ProjectName: "X", ClientName: "Y", Description: "Z",
	})
	if err := projectRepo.AddTeamMember(ctx, project.ID, member.ID); err != nil {
		t.Fatalf("failed to add team member: %v", err)
	}

	update := dto.ProjectRequest{ProjectName: "X2", ClientName: "Y2", Description: "Z2"}

	err := service.Update(ctx, member.ID, project.ID, update)
	if !errors.Is(err, apperrors.ErrNotProjectManager) {
		t.Errorf("expected member update to be denied, got %v", err)
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("denial should be a 404-style response, got %d", apperrors.StatusCode(err))
	}

	if err := service.Update(ctx, manager.ID, project.ID, update); err != nil {
		t.Fatalf("manager update failed: %v", err)
	}

	reloaded, _ := projectRepo.FindByID(ctx, project.ID)
	if reloaded.ProjectName != "X2" || reloaded.ClientName != "Y2" || reloaded.Description != "Z2" {
		t.Errorf("fields were not overwritten: %+v", reloaded)
	}
}

func TestProjectService_DeleteManagerOnly(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	service := NewProjectService(projectRepo, NewCascade(projectRepo, taskRepo, noteRepo))

	ctx := context.Background()
	manager := createTestUser(t, db, "Alice", "alice@example.com")
	member := createTestUser(t, db, "Bob", "bob@example.com")

	project, _ := service.Create(ctx, manager.ID, dto.ProjectRequest{
		ProjectName: "X", ClientName: "Y", Description: "Z",
	})
	if err := projectRepo.AddTeamMember(ctx, project.ID, member.ID); err != nil {
		t.Fatalf("failed to add team member: %v", err)
	}

	if err := service.Delete(ctx, member.ID, project.ID); !errors.Is(err, apperrors.ErrNotProjectManager) {
		t.Errorf("expected member delete to be denied, got %v", err)
	}

	if err := service.Delete(ctx, manager.ID, project.ID); err != nil {
		t.Fatalf("manager delete failed: %v", err)
	}

	if _, err := service.Get(ctx, manager.ID, project.ID); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("project should be gone, got %v", err)
	}
}
