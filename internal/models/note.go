package model

import "time"

type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	TaskID    string    `gorm:"size:36;index;not null" json:"task"`
	CreatedBy string    `gorm:"size:36;not null" json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
