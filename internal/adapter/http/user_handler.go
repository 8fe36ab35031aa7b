package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fundcircle-backend/internal/domain/user"
	userUC "fundcircle-backend/internal/usecase/user"
)

type UserHandler struct{ uc *userUC.Usecase }

func NewUserHandler(uc *userUC.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, users)
}

type reviewReq struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// Review settles a pending signup. A second verdict on the same user is a
// conflict, not a rewrite.
func (h *UserHandler) Review(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	u, err := h.uc.Review(c.Request().Context(), userID, user.Status(req.Status))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

type profileReq struct {
	Name        string `json:"name"        validate:"omitempty,min=2,max=255"`
	Avatar      string `json:"avatar"`
	Designation string `json:"designation" validate:"omitempty,max=255"`
}

// UpdateProfile edits the caller's own profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	u, err := h.uc.UpdateProfile(c.Request().Context(), sess.UserID, userUC.ProfileInput{
		Name:        req.Name,
		Avatar:      req.Avatar,
		Designation: req.Designation,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
