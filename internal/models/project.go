package model

import "time"

// Project has exactly one manager and a team roster. The manager is never
// part of the team; membership checks treat the two as distinct roles.
type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectName string    `gorm:"not null" json:"projectName"`
	ClientName  string    `gorm:"not null" json:"clientName"`
	Description string    `gorm:"not null" json:"description"`
	ManagerID   string    `gorm:"size:36;index;not null" json:"manager"`
	Team        []User    `gorm:"many2many:project_members" json:"team,omitempty"`
	Tasks       []Task    `gorm:"foreignKey:ProjectID" json:"tasks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
