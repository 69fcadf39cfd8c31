package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/constants"
	model "taskhive.com/taskhive/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, projectID, name, description string) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ProjectID:   projectID,
		Status:      constants.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("CompletedBy").
		Preload("Notes").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Preload("CompletedBy").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) IDsByProject(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"name":        task.Name,
			"description": task.Description,
		}).Error
}

func (r *TaskRepository) SetStatus(ctx context.Context, taskID string, status constants.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("status", status).Error
}

// LogStatusChange appends one completion-log entry. Issued separately from
// SetStatus with no transaction around the pair.
func (r *TaskRepository) LogStatusChange(ctx context.Context, taskID, userID string, status constants.TaskStatus) error {
	change := &model.TaskStatusChange{
		TaskID:    taskID,
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(change).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.DeleteMany(ctx, []string{id})
}

func (r *TaskRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Where("task_id IN ?", ids).
		Delete(&model.TaskStatusChange{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.Task{}).Error
}
