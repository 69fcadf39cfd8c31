package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/internal/http/validators"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateProjectRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	project, err := h.projectService.Create(c.Request().Context(), actor.ID, req)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	actor := middleware.Actor(c)
	projects, err := h.projectService.List(c.Request().Context(), actor.ID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	actor := middleware.Actor(c)
	project, err := h.projectService.Get(c.Request().Context(), actor.ID, c.Param("projectID"))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req dto.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateProjectRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	if err := h.projectService.Update(c.Request().Context(), actor.ID, c.Param("projectID"), req); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "project updated"})
}

func (h *Handler) DeleteProject(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.projectService.Delete(c.Request().Context(), actor.ID, c.Param("projectID")); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted"})
}
