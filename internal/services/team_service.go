package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type TeamService struct {
	projects *repository.ProjectRepository
	users    *repository.UserRepository
}

func NewTeamService(projects *repository.ProjectRepository, users *repository.UserRepository) *TeamService {
	return &TeamService{
		projects: projects,
		users:    users,
	}
}

// FindMemberByEmail looks up a user's public identity for an invitation.
func (s *TeamService) FindMemberByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *TeamService) Team(ctx context.Context, project *model.Project) ([]model.User, error) {
	return s.projects.Team(ctx, project.ID)
}

// AddMember enforces the roster invariants: the user must exist, the
// manager can never join their own team, and membership is unique. The
// duplicate check and the write are not atomic; two concurrent adds can
// race past the check. Known and accepted.
func (s *TeamService) AddMember(ctx context.Context, project *model.Project, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if project.ManagerID == userID {
		return apperrors.ErrManagerAsMember
	}

	for i := range project.Team {
		if project.Team[i].ID == userID {
			return apperrors.ErrDuplicateMember
		}
	}

	return s.projects.AddTeamMember(ctx, project.ID, userID)
}

// RemoveMember rejects removal of anyone not currently on the roster and
// leaves the roster unchanged in that case.
func (s *TeamService) RemoveMember(ctx context.Context, project *model.Project, userID string) error {
	onTeam := false
	for i := range project.Team {
		if project.Team[i].ID == userID {
			onTeam = true
			break
		}
	}
	if !onTeam {
		return apperrors.ErrNotTeamMember
	}

	return s.projects.RemoveTeamMember(ctx, project.ID, userID)
}
