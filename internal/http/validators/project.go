package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
)

func ValidateProjectRequest(r *dto.ProjectRequest) error {
	if r.ProjectName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project name is required")
	}
	if r.ClientName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client name is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	return nil
}
