package validators

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
)

const minPasswordLength = 8

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password is too short, minimum 8 characters")
	}
	if r.Password != r.PasswordConfirmation {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateTokenRequest(r *dto.TokenRequest) error {
	if r.Token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}
	return nil
}

func ValidateEmailRequest(r *dto.EmailRequest) error {
	return validEmail(r.Email)
}

func ValidateNewPasswordRequest(r *dto.NewPasswordRequest) error {
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password is too short, minimum 8 characters")
	}
	if r.Password != r.PasswordConfirmation {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	return nil
}

func ValidateUpdateProfileRequest(r *dto.UpdateProfileRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return validEmail(r.Email)
}

func ValidateUpdatePasswordRequest(r *dto.UpdatePasswordRequest) error {
	if r.CurrentPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is required")
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password is too short, minimum 8 characters")
	}
	if r.Password != r.PasswordConfirmation {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	return nil
}

func ValidateCheckPasswordRequest(r *dto.CheckPasswordRequest) error {
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func validEmail(email string) error {
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email is not valid")
	}
	return nil
}
