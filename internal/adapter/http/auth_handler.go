package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/internal/usecase/auth"
	userUC "fundcircle-backend/internal/usecase/user"
)

type AuthHandler struct {
	auth  *auth.Usecase
	users *userUC.Usecase
}

func NewAuthHandler(a *auth.Usecase, u *userUC.Usecase) *AuthHandler {
	return &AuthHandler{auth: a, users: u}
}

type loginReq struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=ADMIN MEMBER"`
}

type loginResp struct {
	Token   string        `json:"token"`
	Session *auth.Session `json:"session"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	token, sess, err := h.auth.Login(c.Request().Context(), req.Email, user.Role(req.Role))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, Session: sess})
}

type signupReq struct {
	Name  string `json:"name"  validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=ADMIN MEMBER"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	u, err := h.users.Signup(c.Request().Context(), userUC.SignupInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  user.Role(req.Role),
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	if err := h.auth.Logout(c.Request().Context(), sess.TokenID); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
