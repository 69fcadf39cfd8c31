package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	task, err := h.taskService.Create(c.Request().Context(), actor.ID, middleware.Project(c), req)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListByProject(c.Request().Context(), middleware.Project(c))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.Task(c))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	err := h.taskService.Update(c.Request().Context(), actor.ID, middleware.Project(c), middleware.Task(c), req)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task updated"})
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateStatusRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	err := h.taskService.UpdateStatus(c.Request().Context(), actor.ID, middleware.Task(c), constants.TaskStatus(req.Status))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task status updated"})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	actor := middleware.Actor(c)
	err := h.taskService.Delete(c.Request().Context(), actor.ID, middleware.Project(c), middleware.Task(c))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
