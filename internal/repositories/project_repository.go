package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, managerID, projectName, clientName, description string) (*model.Project, error) {
	project := &model.Project{
		ID:          uuid.NewString(),
		ProjectName: projectName,
		ClientName:  clientName,
		Description: description,
		ManagerID:   managerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// FindByID loads a project with its team roster and tasks, both of which
// the membership checks and the API responses depend on.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Tasks").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForUser returns every project the user manages or belongs to.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Distinct("projects.*").
		Joins("LEFT JOIN project_members pm ON pm.project_id = projects.id").
		Where("projects.manager_id = ? OR pm.user_id = ?", userID, userID).
		Preload("Tasks").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"project_name": project.ProjectName,
			"client_name":  project.ClientName,
			"description":  project.Description,
		}).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Project{ID: id}).
		Association("Team").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) AddTeamMember(ctx context.Context, projectID, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{ID: projectID}).
		Association("Team").Append(&model.User{ID: userID})
}

func (r *ProjectRepository) RemoveTeamMember(ctx context.Context, projectID, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{ID: projectID}).
		Association("Team").Delete(&model.User{ID: userID})
}

func (r *ProjectRepository) Team(ctx context.Context, projectID string) ([]model.User, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		First(&project, "id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return project.Team, nil
}
