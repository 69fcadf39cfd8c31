package model

import (
	"time"

	"taskhive.com/taskhive/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Name        string               `gorm:"not null" json:"name"`
	Description string               `gorm:"not null" json:"description"`
	ProjectID   string               `gorm:"size:36;index;not null" json:"project"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CompletedBy []TaskStatusChange   `gorm:"foreignKey:TaskID" json:"completedBy"`
	Notes       []Note               `gorm:"foreignKey:TaskID" json:"notes"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TaskStatusChange is one entry of a task's completion log: who moved the
// task and to which state. Entries are append-only, ordered by insertion.
type TaskStatusChange struct {
	ID        uint                 `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID    string               `gorm:"size:36;index;not null" json:"-"`
	UserID    string               `gorm:"size:36;not null" json:"user"`
	Status    constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}
