package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type ProjectService struct {
	projects *repository.ProjectRepository
	cascade  *Cascade
}

func NewProjectService(projects *repository.ProjectRepository, cascade *Cascade) *ProjectService {
	return &ProjectService{
		projects: projects,
		cascade:  cascade,
	}
}

// Create makes the actor the project's manager. The team and task list
// start empty.
func (s *ProjectService) Create(ctx context.Context, actorID string, req dto.ProjectRequest) (*model.Project, error) {
	return s.projects.Create(ctx, actorID, req.ProjectName, req.ClientName, req.Description)
}

func (s *ProjectService) List(ctx context.Context, actorID string) ([]model.Project, error) {
	return s.projects.ListForUser(ctx, actorID)
}

// Get hides whether the project exists from actors without access: a
// missing project and a denied one produce the same error.
func (s *ProjectService) Get(ctx context.Context, actorID, projectID string) (*model.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !CanViewProject(project, actorID) {
		return nil, apperrors.ErrProjectNotFound
	}

	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, actorID, projectID string, req dto.ProjectRequest) error {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return err
	}

	if !IsProjectManager(project, actorID) {
		return apperrors.ErrNotProjectManager
	}

	project.ProjectName = req.ProjectName
	project.ClientName = req.ClientName
	project.Description = req.Description

	return s.projects.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, actorID, projectID string) error {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return err
	}

	if !IsProjectManager(project, actorID) {
		return apperrors.ErrNotProjectManager
	}

	return s.cascade.DeleteProject(ctx, project.ID)
}

func (s *ProjectService) findProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
