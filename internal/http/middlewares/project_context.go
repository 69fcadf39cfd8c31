package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/internal/services"
)

const projectContextKey = "project"

// RequireProject resolves the :projectID path segment and verifies the
// actor may see the project. A missing project and a project the actor
// cannot see produce the same not-found response, so existence never
// leaks to outsiders.
func RequireProject(projects *repository.ProjectRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			project, err := projects.FindByID(c.Request().Context(), c.Param("projectID"))
			if err != nil {
				return echo.NewHTTPError(
					apperrors.ErrProjectNotFound.StatusCode,
					apperrors.ErrProjectNotFound.Message,
				)
			}

			if !services.CanViewProject(project, Actor(c).ID) {
				return echo.NewHTTPError(
					apperrors.ErrProjectNotFound.StatusCode,
					apperrors.ErrProjectNotFound.Message,
				)
			}

			c.Set(projectContextKey, project)
			return next(c)
		}
	}
}

// RequireManager gates manager-only routes. Team members get the same
// not-found style denial as strangers.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			project := Project(c)
			if !services.IsProjectManager(project, Actor(c).ID) {
				return echo.NewHTTPError(
					apperrors.ErrNotProjectManager.StatusCode,
					apperrors.ErrNotProjectManager.Message,
				)
			}
			return next(c)
		}
	}
}

func Project(c echo.Context) *model.Project {
	project, _ := c.Get(projectContextKey).(*model.Project)
	return project
}
