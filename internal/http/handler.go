package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskhive.com/taskhive/internal/errors"
	"taskhive.com/taskhive/internal/services"
)

type Handler struct {
	authService    *services.AuthService
	projectService *services.ProjectService
	taskService    *services.TaskService
	teamService    *services.TeamService
	noteService    *services.NoteService
}

func NewHandler(
	authService *services.AuthService,
	projectService *services.ProjectService,
	taskService *services.TaskService,
	teamService *services.TeamService,
	noteService *services.NoteService,
) *Handler {
	return &Handler{
		authService:    authService,
		projectService: projectService,
		taskService:    taskService,
		teamService:    teamService,
		noteService:    noteService,
	}
}

// respondError maps a service error to its HTTP response. Known failures
// carry their own status and message; anything else becomes a generic 500
// with no partial-success detail.
func respondError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "unexpected error, check the server logs")
}
