package services

import (
	"context"

	repository "taskhive.com/taskhive/internal/repositories"
)

// Cascade deletes dependent entities when their owner goes away:
// Project -> Tasks -> Notes, and Task -> Notes. Deletes are issued as
// independent sequential writes with no transaction; a mid-sequence
// failure leaves partial state and surfaces as a generic error.
type Cascade struct {
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	notes    *repository.NoteRepository
}

func NewCascade(
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
	notes *repository.NoteRepository,
) *Cascade {
	return &Cascade{
		projects: projects,
		tasks:    tasks,
		notes:    notes,
	}
}

// DeleteProject removes every note of every owned task, then the tasks,
// then the project itself.
func (c *Cascade) DeleteProject(ctx context.Context, projectID string) error {
	taskIDs, err := c.tasks.IDsByProject(ctx, projectID)
	if err != nil {
		return err
	}

	if err := c.notes.DeleteByTasks(ctx, taskIDs); err != nil {
		return err
	}

	if err := c.tasks.DeleteMany(ctx, taskIDs); err != nil {
		return err
	}

	return c.projects.Delete(ctx, projectID)
}

// DeleteTask removes the task's notes, then the task. Dropping the task
// row also removes it from its project's task list.
func (c *Cascade) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.notes.DeleteByTask(ctx, taskID); err != nil {
		return err
	}

	return c.tasks.Delete(ctx, taskID)
}
