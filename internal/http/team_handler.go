package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/internal/http/validators"
)

func (h *Handler) FindMember(c echo.Context) error {
	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateFindMemberRequest(&req); err != nil {
		return err
	}

	user, err := h.teamService.FindMemberByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) Team(c echo.Context) error {
	team, err := h.teamService.Team(c.Request().Context(), middleware.Project(c))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponses(team))
}

func (h *Handler) AddMember(c echo.Context) error {
	var req dto.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAddMemberRequest(&req); err != nil {
		return err
	}

	if err := h.teamService.AddMember(c.Request().Context(), middleware.Project(c), req.ID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "member added"})
}

func (h *Handler) RemoveMember(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	if err := h.teamService.RemoveMember(c.Request().Context(), middleware.Project(c), userID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "member removed"})
}
