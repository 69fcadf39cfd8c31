package services

import model "taskhive.com/taskhive/internal/models"

// Role is a user's relationship to a project. Managers hold exclusive
// mutation rights; team members get read access plus status updates and
// notes.
type Role int

const (
	RoleNone Role = iota
	RoleTeamMember
	RoleManager
)

// ProjectRole decides the actor's role on a project. The project's team
// must be loaded. Pure decision, no side effects; callers translate a
// negative answer into a not-found style denial so project existence never
// leaks.
func ProjectRole(project *model.Project, userID string) Role {
	if project.ManagerID == userID {
		return RoleManager
	}
	for i := range project.Team {
		if project.Team[i].ID == userID {
			return RoleTeamMember
		}
	}
	return RoleNone
}

func CanViewProject(project *model.Project, userID string) bool {
	return ProjectRole(project, userID) != RoleNone
}

func IsProjectManager(project *model.Project, userID string) bool {
	return ProjectRole(project, userID) == RoleManager
}
