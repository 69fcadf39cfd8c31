package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/internal/http/validators"
)

func (h *Handler) CreateNote(c echo.Context) error {
	var req dto.NoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateNoteRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	note, err := h.noteService.Create(c.Request().Context(), actor.ID, middleware.Task(c), req.Content)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, note)
}

func (h *Handler) ListNotes(c echo.Context) error {
	notes, err := h.noteService.ListByTask(c.Request().Context(), middleware.Task(c))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, notes)
}

func (h *Handler) DeleteNote(c echo.Context) error {
	actor := middleware.Actor(c)
	err := h.noteService.Delete(
		c.Request().Context(),
		actor.ID,
		middleware.Project(c),
		middleware.Task(c),
		c.Param("noteID"),
	)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "note deleted"})
}
