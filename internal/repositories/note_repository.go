package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, taskID, authorID, content string) (*model.Note, error) {
	note := &model.Note{
		ID:        uuid.NewString(),
		Content:   content,
		TaskID:    taskID,
		CreatedBy: authorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, err
	}

	return note, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) ListByTask(ctx context.Context, taskID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", id).Error
}

func (r *NoteRepository) DeleteByTask(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&model.Note{}).Error
}

func (r *NoteRepository) DeleteByTasks(ctx context.Context, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Delete(&model.Note{}).Error
}
