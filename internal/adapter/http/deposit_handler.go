package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	depositUC "fundcircle-backend/internal/usecase/deposit"
)

type DepositHandler struct{ uc *depositUC.Usecase }

func NewDepositHandler(uc *depositUC.Usecase) *DepositHandler { return &DepositHandler{uc: uc} }

type depositReq struct {
	MemberID     string  `json:"member_id"     validate:"required,hex32"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	PaymentDate  string  `json:"payment_date"  validate:"required,datetime=2006-01-02"`
	ReceiptImage string  `json:"receipt_image"`
	Notes        string  `json:"notes"`
	Description  string  `json:"description"`
}

func (h *DepositHandler) Add(c echo.Context) error {
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)
	d, err := h.uc.Add(c.Request().Context(), depositUC.AddInput{
		MemberID:     req.MemberID,
		Amount:       decimal.NewFromFloat(req.Amount).Round(2),
		PaymentDate:  paymentDate,
		ReceiptImage: req.ReceiptImage,
		Notes:        req.Notes,
		Description:  req.Description,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

type depositUpdateReq struct {
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	PaymentDate  string  `json:"payment_date"  validate:"required,datetime=2006-01-02"`
	ReceiptImage string  `json:"receipt_image"`
	Notes        string  `json:"notes"`
	Description  string  `json:"description"`
}

func (h *DepositHandler) Update(c echo.Context) error {
	depositID := c.Param("deposit_id")
	if depositID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing deposit_id path param"})
	}
	var req depositUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)
	d, err := h.uc.Update(c.Request().Context(), depositID, depositUC.UpdateInput{
		Amount:       decimal.NewFromFloat(req.Amount).Round(2),
		PaymentDate:  paymentDate,
		ReceiptImage: req.ReceiptImage,
		Notes:        req.Notes,
		Description:  req.Description,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DepositHandler) Delete(c echo.Context) error {
	depositID := c.Param("deposit_id")
	if err := h.uc.Delete(c.Request().Context(), depositID); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DepositHandler) List(c echo.Context) error {
	deposits, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, deposits)
}

// ListMine returns the caller's own deposit history.
func (h *DepositHandler) ListMine(c echo.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active session"})
	}
	deposits, err := h.uc.ListByMember(c.Request().Context(), sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data unavailable"})
	}
	return c.JSON(http.StatusOK, deposits)
}
