package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	if err := h.authService.Register(c.Request().Context(), req); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "account created, check your email to confirm it",
	})
}

func (h *Handler) ConfirmAccount(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTokenRequest(&req); err != nil {
		return err
	}

	if err := h.authService.ConfirmAccount(c.Request().Context(), req.Token); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "account confirmed"})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.String(http.StatusOK, token)
}

func (h *Handler) RequestCode(c echo.Context) error {
	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateEmailRequest(&req); err != nil {
		return err
	}

	if err := h.authService.RequestConfirmationCode(c.Request().Context(), req.Email); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "a new code was sent to your email"})
}

func (h *Handler) ForgotPassword(c echo.Context) error {
	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateEmailRequest(&req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "check your email for instructions"})
}

func (h *Handler) ValidateToken(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTokenRequest(&req); err != nil {
		return err
	}

	if err := h.authService.ValidateResetCode(c.Request().Context(), req.Token); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "valid token, set your new password"})
}

func (h *Handler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}

	var req dto.NewPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateNewPasswordRequest(&req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Request().Context(), token, req.Password); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

func (h *Handler) CurrentUser(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewUserResponse(middleware.Actor(c)))
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateProfileRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	if err := h.authService.UpdateProfile(c.Request().Context(), actor, req.Name, req.Email); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}

func (h *Handler) UpdatePassword(c echo.Context) error {
	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdatePasswordRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	if err := h.authService.UpdatePassword(c.Request().Context(), actor, req.CurrentPassword, req.Password); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

func (h *Handler) CheckPassword(c echo.Context) error {
	var req dto.CheckPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCheckPasswordRequest(&req); err != nil {
		return err
	}

	actor := middleware.Actor(c)
	if err := h.authService.CheckPassword(c.Request().Context(), actor, req.Password); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password is correct"})
}
