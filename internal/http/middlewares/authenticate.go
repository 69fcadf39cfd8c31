package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskhive.com/taskhive/internal/auth"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

const actorContextKey = "actor"

// Authenticate resolves the acting user from the bearer token and attaches
// it to the request context. Every protected route runs behind this; no
// request reaches an authorization check without an identified actor.
func Authenticate(jwtSecret string, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			userID, err := auth.ParseJWT(jwtSecret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			c.Set(actorContextKey, user)
			return next(c)
		}
	}
}

func Actor(c echo.Context) *model.User {
	user, _ := c.Get(actorContextKey).(*model.User)
	return user
}
