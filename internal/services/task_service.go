package services

import (
	"context"

	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type TaskService struct {
	tasks   *repository.TaskRepository
	cascade *Cascade
}

func NewTaskService(tasks *repository.TaskRepository, cascade *Cascade) *TaskService {
	return &TaskService{
		tasks:   tasks,
		cascade: cascade,
	}
}

// Create binds a new pending task to the project. Manager only; the denial
// does not reveal whether the project exists.
func (s *TaskService) Create(ctx context.Context, actorID string, project *model.Project, req dto.TaskRequest) (*model.Task, error) {
	if !IsProjectManager(project, actorID) {
		return nil, apperrors.ErrNotProjectManager
	}

	return s.tasks.Create(ctx, project.ID, req.Name, req.Description)
}

func (s *TaskService) ListByProject(ctx context.Context, project *model.Project) ([]model.Task, error) {
	return s.tasks.ListByProject(ctx, project.ID)
}

func (s *TaskService) Update(ctx context.Context, actorID string, project *model.Project, task *model.Task, req dto.TaskRequest) error {
	if !IsProjectManager(project, actorID) {
		return apperrors.ErrNotProjectManager
	}

	task.Name = req.Name
	task.Description = req.Description

	return s.tasks.Update(ctx, task)
}

// UpdateStatus is open to any project member, not just the manager: every
// member may move a task through the workflow. The new status only has to
// be one of the five known states; any state may follow any other. Each
// transition appends (actor, status) to the completion log. The status
// write and the log append are two independent writes.
func (s *TaskService) UpdateStatus(ctx context.Context, actorID string, task *model.Task, status constants.TaskStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidStatus
	}

	if err := s.tasks.SetStatus(ctx, task.ID, status); err != nil {
		return err
	}

	return s.tasks.LogStatusChange(ctx, task.ID, actorID, status)
}

func (s *TaskService) Delete(ctx context.Context, actorID string, project *model.Project, task *model.Task) error {
	if !IsProjectManager(project, actorID) {
		return apperrors.ErrNotProjectManager
	}

	return s.cascade.DeleteTask(ctx, task.ID)
}
