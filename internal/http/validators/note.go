package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
)

func ValidateNoteRequest(r *dto.NoteRequest) error {
	if r.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "note content is required")
	}
	return nil
}
