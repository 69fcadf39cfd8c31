package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

const taskContextKey = "task"

// RequireTask resolves the :taskID path segment and verifies the task
// belongs to the project already resolved for this request. The binding
// check is independent of authorization: a real task reached through the
// wrong project is reported as not found.
func RequireTask(tasks *repository.TaskRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			task, err := tasks.FindByID(c.Request().Context(), c.Param("taskID"))
			if err != nil {
				return echo.NewHTTPError(
					apperrors.ErrTaskNotFound.StatusCode,
					apperrors.ErrTaskNotFound.Message,
				)
			}

			if task.ProjectID != Project(c).ID {
				return echo.NewHTTPError(
					apperrors.ErrTaskNotInProject.StatusCode,
					apperrors.ErrTaskNotInProject.Message,
				)
			}

			c.Set(taskContextKey, task)
			return next(c)
		}
	}
}

func Task(c echo.Context) *model.Task {
	task, _ := c.Get(taskContextKey).(*model.Task)
	return task
}
