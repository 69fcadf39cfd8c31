package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
)

func ValidateAddMemberRequest(r *dto.AddMemberRequest) error {
	if r.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}
	return nil
}

func ValidateFindMemberRequest(r *dto.EmailRequest) error {
	return validEmail(r.Email)
}
