package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fundcircle-backend/internal/usecase/auth"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// CurrentSession returns the session snapshot bound by the auth middleware,
// or nil on unauthenticated routes.
func CurrentSession(c echo.Context) *auth.Session {
	if s, ok := c.Get("session").(*auth.Session); ok {
		return s
	}
	return nil
}
