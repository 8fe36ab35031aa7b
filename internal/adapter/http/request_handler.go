package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	requestUC "fundcircle-backend/internal/usecase/loanrequest"
)

type LoanRequestHandler struct{ uc *requestUC.Usecase }

func NewLoanRequestHandler(uc *requestUC.Usecase) *LoanRequestHandler {
	return &LoanRequestHandler{uc: uc}
}

type submitRequestReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Term   int     `json:"term"   validate:"required,gt=0"`
}

// Submit files a loan request for the calling member.
func (h *LoanRequestHandler) Submit(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	var req submitRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	lr, err := h.uc.Submit(c.Request().Context(), requestUC.SubmitInput{
		MemberID: sess.UserID,
		Amount:   decimal.NewFromFloat(req.Amount).Round(2),
		Term:     req.Term,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, lr)
}

func (h *LoanRequestHandler) List(c echo.Context) error {
	requests, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *LoanRequestHandler) ListMine(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	requests, err := h.uc.ListByMember(c.Request().Context(), sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, requests)
}

// Approve settles a pending request and returns the issued loan.
func (h *LoanRequestHandler) Approve(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	l, err := h.uc.Approve(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanRequestHandler) Reject(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	lr, err := h.uc.Reject(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, lr)
}
