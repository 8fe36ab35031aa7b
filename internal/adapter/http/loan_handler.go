package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanUC "fundcircle-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type issueLoanReq struct {
	MemberID string  `json:"member_id" validate:"required,hex32"`
	Amount   float64 `json:"amount"    validate:"required,gt=0,dec2"`
	Term     int     `json:"term"      validate:"required,gt=0"`
}

func (h *LoanHandler) Issue(c echo.Context) error {
	var req issueLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Issue(c.Request().Context(), loanUC.IssueInput{
		MemberID: req.MemberID,
		Amount:   decimal.NewFromFloat(req.Amount).Round(2),
		Term:     req.Term,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

type reissueLoanReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Term   int     `json:"term"   validate:"required,gt=0"`
}

func (h *LoanHandler) Reissue(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req reissueLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Reissue(c.Request().Context(), loanID, loanUC.ReissueInput{
		Amount: decimal.NewFromFloat(req.Amount).Round(2),
		Term:   req.Term,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) Get(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) List(c echo.Context) error {
	loans, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, loans)
}

// ListMine returns the caller's own loans.
func (h *LoanHandler) ListMine(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	loans, err := h.uc.ListByMember(c.Request().Context(), sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// PayInstallment records one repayment against a loan's schedule.
func (h *LoanHandler) PayInstallment(c echo.Context) error {
	loanID := c.Param("loan_id")
	installmentID, err := uuid.Parse(c.Param("installment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid installment_id"})
	}
	l, err := h.uc.PayInstallment(c.Request().Context(), loanID, installmentID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}
