package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
)

func ValidateTaskRequest(r *dto.TaskRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task name is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task description is required")
	}
	return nil
}

func ValidateStatusRequest(r *dto.StatusRequest) error {
	if r.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	return nil
}
