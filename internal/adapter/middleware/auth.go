package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/internal/usecase/auth"
)

// RequireSession resolves the bearer token into its session snapshot and
// binds it to the request context. Everything behind the gate reads the
// snapshot, never ambient global state.
func RequireSession(a *auth.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			sess, err := a.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set("session", sess)
			return next(c)
		}
	}
}

// RequireAdmin gates management routes on the session role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get("session").(*auth.Session)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no active session"})
			}
			if sess.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
